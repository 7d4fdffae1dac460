package main

import (
	"moviehub/pkg/config"
	"moviehub/pkg/logger"
	"moviehub/service-api/internal/app"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and start the application server
	server := app.NewAppServer(cfg)
	server.Serve()
}
