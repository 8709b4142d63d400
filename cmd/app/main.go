package main

import (
	"log"
	"os"

	"EvoEngine/internal/di"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; production deployments set real env vars.
	_ = godotenv.Load()

	// Wire DI: config manager, logger, application shell
	app, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
