package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/app"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/config"
)

func main() {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatalf("app: %v", err)
	}
}
