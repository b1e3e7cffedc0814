package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/payroll-scenario-simulator/internal"
	"github.com/syrilster/payroll-scenario-simulator/internal/config"
)

func main() {
	// load values from .env into the system
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}

	cfg, err := config.NewApplicationConfig()
	if err != nil {
		log.Fatalf("failed to start application: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel())
	if err != nil {
		log.WithError(err).Warnf("Unknown log level %q, using info", cfg.LogLevel())
		level = log.InfoLevel
	}
	log.SetLevel(level)

	server := internal.SetupServer(cfg)
	log.Infof("Serving %d employees on port %d", len(cfg.Directory().List()), cfg.ServerPort())
	server.Start("", cfg.ServerPort())
}
