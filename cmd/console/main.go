package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erp/console/internal/application/pages"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/erp/console/internal/infrastructure/config"
	"github.com/erp/console/internal/infrastructure/logger"
	"github.com/erp/console/internal/infrastructure/session"
	"github.com/erp/console/internal/interfaces/console"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := session.NewStore()
	manager := session.NewManager(store, cfg.Auth.BaseURL, cfg.Auth.HandshakeSecret, nil, logger.Named(log, "session"))

	opts := api.Options{Timeout: cfg.HTTP.Timeout}
	if cfg.HTTP.RateLimitEnabled {
		opts.RateLimit = rate.Limit(cfg.HTTP.RateLimitRPS)
		opts.Burst = cfg.HTTP.RateLimitBurst
	}
	client := api.NewClient(cfg.API.BaseURL, session.NewTransport(nil, manager), logger.Named(log, "api"), opts)

	notices := console.NewNotices(os.Stdout)
	app := console.NewApp(console.Deps{
		Router:    pages.NewRouter(store),
		Login:     pages.NewLoginPage(client, manager, notices, logger.Named(log, "login")),
		Customers: pages.NewCustomersPage(client, notices, logger.Named(log, "customers")),
		Products:  pages.NewProductsPage(client, notices, logger.Named(log, "products")),
		Sales:     pages.NewSalesPage(client, notices, logger.Named(log, "sales")),
		Reports:   pages.NewReportsPage(client, notices, logger.Named(log, "reports")),
		Users:     pages.NewUsersPage(client, notices, logger.Named(log, "users")),
		Store:     store,
		In:        os.Stdin,
		Out:       os.Stdout,
		Logger:    log,
	})

	log.Info("starting console",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("api", cfg.API.BaseURL))

	app.Run(ctx)
}
