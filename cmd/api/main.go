package main

import (
	"fmt"
	"os"

	_ "orcasys/docs"
	"orcasys/internal/adapter/http/routes"
	"orcasys/internal/config"
	"orcasys/internal/infrastructure/logging"

	"go.uber.org/zap"
)

// @title           Orcasys API
// @version         1.0
// @description     Budget management for sign and printing jobs, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg := config.Load()

	logger, err := logging.New(logging.Config{
		ServiceName: cfg.AppName,
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
