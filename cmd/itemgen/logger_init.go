package main

import (
	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		false,
	)

	logger.InitLogger(loggerConfig)
}
