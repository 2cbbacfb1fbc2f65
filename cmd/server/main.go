package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"transconnect/internal/config"
	"transconnect/internal/controllers"
	"transconnect/internal/ledger"
	"transconnect/internal/logger"
	"transconnect/internal/routes"
)

func main() {
	// Load environment configuration
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// Build the booking ledger: fixed catalog, seeded admin account
	registry := ledger.NewRegistry()
	registry.SeedAdmin(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	core := ledger.New(ledger.DefaultCatalog(), registry)

	// Setup Gin router
	r := routes.SetupRouter(controllers.NewHandler(core))

	log.Println("🚀 Server running at " + cfg.AppAddr)
	log.Fatal(r.Run(cfg.AppAddr))
}
