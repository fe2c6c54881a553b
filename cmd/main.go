/*
Package main is the entry point for the user account service.

It loads configuration, initializes the global logging system, opens the configured
credential store, wires the account flows into the HTTP router and gracefully handles
operating system interrupt signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usersvc/internal/app/account"
	"usersvc/internal/app/db"
	"usersvc/internal/app/user"
	"usersvc/internal/configs"
	"usersvc/internal/handler"
	"usersvc/internal/pkg/auth/jwt"
	"usersvc/internal/pkg/auth/password"
	"usersvc/internal/pkg/avatar"
	"usersvc/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logx.InitGlobalLogger(logx.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("store_driver", cfg.StoreDriver).
		Int("bcrypt_cost", cfg.BcryptCost).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open user store", "driver", cfg.StoreDriver)
	}
	defer closeStore()

	hasher, err := password.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		logx.Fatal(err, "Invalid password hasher configuration")
	}

	issuer, err := jwt.NewIssuer(cfg.JWTSecret)
	if err != nil {
		logx.Fatal(err, "Invalid token issuer configuration")
	}

	deps := &handler.AppDeps{
		Config:   cfg,
		Accounts: account.NewService(store, hasher, issuer, avatar.Default()),
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler.Router(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("User service starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}

// openStore builds the user.Store selected by cfg.StoreDriver. The returned
// func releases its resources.
func openStore(ctx context.Context, cfg *configs.AppConfig) (user.Store, func(), error) {
	switch cfg.StoreDriver {
	case configs.StoreDriverMemory:
		logx.Warn("Using in-memory user store; accounts are lost on restart")
		return user.NewMemoryStore(), func() {}, nil

	case configs.StoreDriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		logx.Info("Connected to PostgreSQL")
		return db.NewUserStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
