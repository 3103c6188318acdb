package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/config"
	"github.com/Lixing-Zhang/storefront-api/internal/handlers"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/Lixing-Zhang/storefront-api/internal/seed"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
	"github.com/Lixing-Zhang/storefront-api/pkg/logger"
	gfshutdown "github.com/gelmium/graceful-shutdown"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"environment", cfg.Environment,
		"storage", cfg.Database.Storage,
		"log_level", cfg.LogLevel,
	)

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: cfg.Auth.JWTSecret,
		TTL:       cfg.Auth.TokenTTL,
		Issuer:    cfg.Auth.Issuer,
	})

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStore(startupCtx, cfg, hasher, log)
	cancel()
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	productService := service.NewProductService(store, store, log)
	orderService := service.NewOrderService(store, store, service.NewPricer(cfg.Pricing), log)
	statsService := service.NewStatsService(store)
	authService := service.NewAuthService(store, hasher, tokens, log)

	// Initialize handlers
	rs := handlers.Responder{Log: log, Debug: !cfg.IsProduction()}
	router := handlers.NewRouter(handlers.RouterConfig{
		Products:       handlers.NewProductHandler(productService, rs),
		Orders:         handlers.NewOrderHandler(orderService, rs),
		Stats:          handlers.NewStatsHandler(statsService, rs),
		Auth:           handlers.NewAuthHandler(authService, rs),
		Health:         handlers.NewHealthHandler(store, rs),
		Tokens:         tokens,
		Responder:      rs,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		ShowStack:      cfg.IsDevelopment(),
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Drain in-flight requests before the pool goes away
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info("shutting down server...")
				err := srv.Shutdown(ctx)
				store.Close()
				return err
			},
		},
	)

	exitCode := <-wait
	log.Info("server stopped", "exit_code", exitCode)
	os.Exit(exitCode)
}

// openStore connects and migrates PostgreSQL, or builds a seeded memory store
func openStore(ctx context.Context, cfg *config.Config, hasher seed.Hasher, log *slog.Logger) (repository.Store, error) {
	if cfg.Database.Storage == config.StorageMemory {
		store := repository.NewMemoryStore()
		sum, err := seed.Apply(ctx, store, hasher)
		if err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		log.Info("memory store seeded", "products", sum.Products, "categories", sum.Categories)
		return store, nil
	}

	store, err := repository.NewPostgresStore(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	log.Info("database connected", "max_conns", cfg.Database.MaxConns)
	return store, nil
}
