package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/LeakIX/stripe-accounting/cmd"
	"github.com/LeakIX/stripe-accounting/internal/config"
	"github.com/LeakIX/stripe-accounting/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("Failed to prepare output directories: %v", err)
	}

	mainLog := logger.WithComponent("main")
	mainLog.Info().Msg("Starting Stripe accounting CLI")

	cmd.Execute(cfg)

	mainLog.Info().Msg("Stripe accounting CLI shutdown")
	os.Exit(0)
}
