package main

import (
	"log"
	"vacate_quote/internal/adapter/http/routes"
	"vacate_quote/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Vacate Quote API
// @version         1.0
// @description     Conversational vacate-cleaning quotes: chat turns, quote lookups, booking and referral callbacks.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := cfg.Validate(); err != nil {
		zap.L().Fatal("invalid configuration", zap.Error(err))
	}
	if err := routes.Run(cfg); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
