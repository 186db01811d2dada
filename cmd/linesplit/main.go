package main

import (
	"log"
	"os"

	"linesplit/internal/app"
	"linesplit/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Загружаем .env (опционально)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	if err := a.Run(os.Stdin); err != nil {
		log.Fatalf("split failed: %v", err)
	}
}
