package main

import (
	"github.com/steppeworks/CryptoAul_Go/internal/config"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

const serviceName = "cryptoaul"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
