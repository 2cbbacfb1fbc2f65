package routes

import (
	"github.com/gin-gonic/gin"

	"transconnect/internal/controllers"
	"transconnect/internal/middleware"
)

func RiderRoutes(r *gin.Engine, h *controllers.Handler) {
	rider := r.Group("/rider")
	rider.Use(middleware.RequireAuthWithRole("rider"))
	{
		rider.POST("/bookings", h.BookSeat)
		rider.GET("/bookings", h.MyBookings)
	}
}
