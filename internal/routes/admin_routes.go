package routes

import (
	"github.com/gin-gonic/gin"

	"transconnect/internal/controllers"
	"transconnect/internal/middleware"
)

func AdminRoutes(r *gin.Engine, h *controllers.Handler) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/bookings", h.AllBookings)
		admin.GET("/accounts", h.ListRiders)
		admin.PUT("/routes/:id/seats", h.SetRouteSeats)
	}
}
