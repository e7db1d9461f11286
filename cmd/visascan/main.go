package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/Aashish23092/visa-document-scanner/config"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	logCfg := cfg.GetLoggerConfig()
	// stdout carries the scan result.
	if logCfg.Output == "" || logCfg.Output == "stdout" {
		logCfg.Output = "stderr"
	}
	if err := logger.Setup(logCfg); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	Execute(cfg)
}
