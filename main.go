package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/router"
	"github.com/yeremiapane/restaurant-api/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	startedAt := time.Now()

	cfg, loadedEnv, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.LogLevel)
	if !loadedEnv {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DB)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database. Please check your configuration: %v", err)
	}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
		}
		utils.InfoLogger.Println("AutoMigrate completed.")
	}

	r := router.SetupRouter(db, router.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		StartedAt:      startedAt,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("Server running on port %s", cfg.Port)
		utils.InfoLogger.Printf("Health check: http://localhost:%s/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutdown signal received. Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Server shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
