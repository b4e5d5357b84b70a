package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"control-room-backend/internal/api/routes"
	"control-room-backend/internal/config"
	"control-room-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "control-room-backend/docs" // This is needed for swag
)

//	@title			Control Room Backend API
//	@version		1.0
//	@description	Shift handover and operations logging backend for a power-plant control room: rosters, shift lifecycle, per-shift logs, equipment, maintenance tickets and licenses.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		logrus.WithError(err).Fatal("Control room backend stopped")
	}
}

// run serves the API until SIGINT or SIGTERM, then drains in-flight requests
func run(cfg *config.Config) error {
	dbOpts := &database.Options{}
	if cfg.IsDevelopment() {
		dbOpts.LogLevel = gormlogger.Warn
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOpts)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		return fmt.Errorf("set up routes: %w", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Port).Info("Control room backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// setupLogging emits JSON to stdout; unknown levels fall back to info
func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
