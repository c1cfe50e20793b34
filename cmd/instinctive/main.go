package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Princegupta101/instinctive/db"
	"github.com/Princegupta101/instinctive/internal/config"
	"github.com/Princegupta101/instinctive/internal/handlers"
	"github.com/Princegupta101/instinctive/internal/logger"
	"github.com/Princegupta101/instinctive/internal/router"
	"github.com/Princegupta101/instinctive/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
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

	if err := run(cfg, logr); err != nil {
		logr.Error("Server exited with error", zap.Error(err))
		logr.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := db.Open(cfg.Database, logr)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logr.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	h := handlers.New(
		services.NewIncidentService(gdb, logr),
		services.NewCameraService(gdb, logr),
		pinger(gdb),
		logr,
	)

	r, err := router.NewRouter(h, cfg.AllowedOrigins, logr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logr.Info("Starting HTTP server",
			zap.String("environment", cfg.Environment),
			zap.String("addr", server.Addr),
			zap.String("database_driver", cfg.Database.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logr.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	logr.Info("Server exited")
	return nil
}

func pinger(gdb *gorm.DB) handlers.PingFunc {
	return func(ctx context.Context) error {
		return db.Ping(ctx, gdb)
	}
}
