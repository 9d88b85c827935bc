package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"razorpay-checkout/internal/client"
	"razorpay-checkout/internal/config"
	"razorpay-checkout/internal/logger"
	"razorpay-checkout/internal/repository"
	"razorpay-checkout/internal/server"
	"razorpay-checkout/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		// only reachable in development, Validate requires it elsewhere
		log.Warn("AUTH_JWT_SECRET not set, using development secret")
		cfg.Auth.JWTSecret = "development-only-secret"
	}

	db, err := client.InitDBClient(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		log.Error("init database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	if err := productRepo.Seed(context.Background()); err != nil {
		log.Error("seed products", "error", err)
		os.Exit(1)
	}

	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)
	mailClient := client.NewMailClient(&cfg.Mail)

	notifier := service.NewOrderNotifier(mailClient, userRepo, productRepo)
	services := server.Services{
		Auth:    service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Product: service.NewProductService(productRepo),
		Order:   service.NewOrderService(log, razorpayClient, cfg.Razorpay.Currency, orderRepo, productRepo),
		Webhook: service.NewWebhookService(log, cfg.Razorpay.WebhookSecret, orderRepo, webhookEventRepo, notifier),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(log, services)

	log.Info("starting HTTP server", "address", serverAddr, "environment", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
