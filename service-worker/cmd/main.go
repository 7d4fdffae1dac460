package main

import (
	"moviehub/pkg/config"
	"moviehub/pkg/logger"
	"moviehub/service-worker/internal/worker"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and run the notification worker
	w := worker.NewWorker(cfg)
	w.Run()
}
