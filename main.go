package main

import (
	"context"
	stdlog "log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Aashish23092/visa-document-scanner/config"
	"github.com/Aashish23092/visa-document-scanner/handler"
	"github.com/Aashish23092/visa-document-scanner/logger"
	"github.com/Aashish23092/visa-document-scanner/service"
)

// pdfProbeTimeout bounds the startup check of the PDF renderer.
const pdfProbeTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	log := logger.WithComponent("main")

	pipeline := service.NewPipeline(cfg)
	defer pipeline.OCR.Close()

	log.Info().
		Str("tessdata", cfg.TesseractDataPath).
		Strs("languages", cfg.OCRLanguages).
		Str("tesseract", pipeline.OCR.Version()).
		Msg("OCR engine configured")

	// Images are served right away; PDFs are refused until the probe passes.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pdfProbeTimeout)
		defer cancel()
		if err := pipeline.PDFSupport.Init(ctx); err != nil {
			log.Warn().Err(err).Msg("PDF uploads will be rejected")
		}
	}()

	visaHandler := handler.NewVisaHandler(pipeline.Scanner)
	healthHandler := handler.NewHealthHandler(pipeline.PDFSupport, pipeline.OCR.Version())

	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Uploads above MaxFileSize are rejected by the scanner; keep the
	// multipart buffer a little larger so the rejection is reported cleanly.
	router.MaxMultipartMemory = cfg.MaxFileSize + 1<<20

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")
	{
		v := api.Group("/visa")
		{
			v.POST("/scan", visaHandler.ScanVisa)
			v.POST("/record", visaHandler.CleanRecord)
		}
	}

	log.Info().Str("port", cfg.ServerPort).Msg("Starting Visa Document Scanner service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
