package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-sales-backend/internal/api/routes"
	"voice-sales-backend/internal/config"
	"voice-sales-backend/internal/database"
	"voice-sales-backend/internal/dispatch"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "voice-sales-backend/docs" // This is needed for swag
)

//	@title			Voice Sales Backend API
//	@version		1.0
//	@description	Outbound sales call orchestration: leads, industry playbooks, calls driven by telephony webhooks, lead scoring, follow-ups and dashboard metrics.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collab, err := routes.NewCollaborators(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize collaborators:", err)
	}
	defer collab.Close()

	svc := routes.NewServices(db, cfg, collab)

	// Queued bulk dials are consumed in-process when a queue is configured
	if cfg.RedisURL != "" {
		worker, err := dispatch.NewWorker(routes.DispatchConfig(cfg), svc.Calls)
		if err != nil {
			logrus.Fatal("Failed to initialize dispatch worker:", err)
		}
		go worker.Run(ctx)
		logrus.WithField("queue", cfg.DispatchQueue).Info("Dispatch worker started")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, svc)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
