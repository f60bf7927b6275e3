package main

import (
	"fmt"
	"os"

	"voice-sales-backend/internal/config"
	"voice-sales-backend/internal/database"
	"voice-sales-backend/internal/phone"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/service"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// backend is the slice of the service layer the commands use
type backend struct {
	leads     service.LeadServiceInterface
	playbooks service.PlaybookServiceInterface
}

func openBackend() (*backend, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	store := repository.NewStore(db)
	validator := service.NewValidator()
	return &backend{
		leads:     service.NewLeadService(store, phone.NewNormalizer(cfg.PhoneDefaultRegion), validator, cfg.BulkConcurrency),
		playbooks: service.NewPlaybookService(store, validator),
	}, closeDB, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Warn}
	if rootFlags.sqlitePath != "" {
		db, err := database.InitializeSQLite(rootFlags.sqlitePath, opts)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	}
	db, err := database.Initialize(cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
