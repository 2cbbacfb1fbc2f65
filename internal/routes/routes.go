package routes

import (
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"transconnect/internal/controllers"
	"transconnect/internal/middleware"
)

func SetupRouter(h *controllers.Handler) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	// Request logging middleware, tagged with the request ID
	r.Use(ginlogger.SetLogger(
		ginlogger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().Str("request_id", middleware.GetRequestID(c)).Logger()
		}),
	))

	// Accept any dynamic origin (useful for mobile dev emulators)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	AuthRoutes(r, h)
	RouteRoutes(r, h)
	RiderRoutes(r, h)
	AdminRoutes(r, h)

	return r
}
