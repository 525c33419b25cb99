package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/app"
	"github.com/wedmarket/wedding-vendor-backend/internal/cache"
	"github.com/wedmarket/wedding-vendor-backend/internal/config"
	"github.com/wedmarket/wedding-vendor-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	redisClient, err := cache.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	container, err := app.NewContainer(app.Config{
		IsProduction:         cfg.IsProduction,
		ProdOrigins:          cfg.ProdOrigins,
		DBPool:               pool,
		RedisClient:          redisClient,
		JWTSecret:            cfg.JWTSecret,
		JWTTTL:               cfg.JWTAccessTokenTTL,
		BcryptCost:           cfg.BcryptCost,
		StoragePath:          cfg.StoragePath,
		DefaultTimezone:      cfg.DefaultTimezone,
		DefaultCapacity:      cfg.DefaultCapacity,
		AvailabilityDebounce: cfg.AvailabilityDebounce,
		VerificationCodeTTL:  cfg.VerificationCodeTTL,
	})
	if err != nil {
		log.Fatalf("failed to init application: %v", err)
	}

	if err := container.Scheduler.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	container.Scheduler.Stop()

	log.Println("server exited gracefully")
}
