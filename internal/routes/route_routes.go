package routes

import (
	"github.com/gin-gonic/gin"

	"transconnect/internal/controllers"
)

// RouteRoutes exposes the catalog. Listing is public so clients can
// show availability before anyone logs in.
func RouteRoutes(r *gin.Engine, h *controllers.Handler) {
	routes := r.Group("/routes")
	{
		routes.GET("", h.ListRoutes)
		routes.GET("/:id/map", h.RouteMap)
	}
}
