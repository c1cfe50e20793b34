package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Princegupta101/instinctive/db"
	"github.com/Princegupta101/instinctive/internal/config"
	"github.com/Princegupta101/instinctive/internal/logger"
	"go.uber.org/zap"
)

func main() {
	resetOnly := flag.Bool("reset-only", false, "delete all incidents and cameras without seeding")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logr, err := logger.New(cfg.Environment, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr, *resetOnly); err != nil {
		logr.Error("Seeding failed", zap.Error(err))
		logr.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *zap.Logger, resetOnly bool) error {
	gdb, err := db.Open(cfg.Database, logr)
	if err != nil {
		return err
	}
	defer db.Close(gdb) //nolint:errcheck

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	ctx := context.Background()

	if err := db.Reset(ctx, gdb); err != nil {
		return err
	}
	logr.Info("Cleared existing incidents and cameras")

	if resetOnly {
		return nil
	}

	result, err := db.Seed(ctx, gdb, time.Now())
	if err != nil {
		return err
	}

	logr.Info("Seeded database",
		zap.Int("cameras", result.Cameras),
		zap.Int("incidents", result.Incidents),
	)

	return nil
}
