package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/castellano-app/castellano-backend/internal/app"
)

func main() {
	// Missing .env is fine; real deployments inject the environment.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server starting", "port", a.Cfg.Port)
	if err := a.Run(":" + a.Cfg.Port); err != nil {
		a.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
