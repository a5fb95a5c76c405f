package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"findash/internal/config"
	"findash/internal/goals"
	apphttp "findash/internal/http"
	"findash/internal/ledger"
	"findash/internal/log"
	"findash/internal/mockdata"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	// Emit money as JSON numbers, matching the client's expectations.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	dataLog := logger.WithComponent(log.ComponentData)
	snap, err := mockdata.Generate(mockdata.Config{
		Seed:         cfg.LedgerSeed,
		TxPerAccount: cfg.TxPerAccount,
	})
	if err != nil {
		dataLog.Error("Ledger generation failed", log.FieldError, err)
		os.Exit(1)
	}
	dataLog.Info("Ledger generated",
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions),
		"goals", len(snap.Goals),
		log.FieldSeed, cfg.LedgerSeed)

	store := ledger.NewStore(snap)
	engine := goals.NewEngine(store)

	srv := apphttp.NewServer(":"+cfg.Port, store, engine, apphttp.Options{
		CacheTTL:        cfg.CacheTTL,
		CacheSize:       cfg.CacheSize,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	srv.ReadTimeout = cfg.ReadTimeout
	srv.WriteTimeout = cfg.WriteTimeout
	srv.IdleTimeout = cfg.IdleTimeout
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting findash server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
