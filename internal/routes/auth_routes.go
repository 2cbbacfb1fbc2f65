package routes

import (
	"github.com/gin-gonic/gin"

	"transconnect/internal/controllers"
)

func AuthRoutes(r *gin.Engine, h *controllers.Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}
