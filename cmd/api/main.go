package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/angelmondragon/skt-storefront/api/routes"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/internal/checkout"
	"github.com/angelmondragon/skt-storefront/internal/location"
	"github.com/angelmondragon/skt-storefront/internal/session"
	"github.com/angelmondragon/skt-storefront/pkg/config"
	"github.com/angelmondragon/skt-storefront/pkg/instance"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	var registerer prometheus.Registerer
	if cfg.Metrics.Enabled {
		registerer = reg
	}
	stats := metrics.NewStorefront(registerer)

	cat := catalog.Default()
	resolver := location.Default()

	store := session.NewStore(session.StoreConfig{
		Options: session.Options{
			Catalog:  cat,
			Resolver: resolver,
			Rules: checkout.Rules{
				ShippingFee: cfg.Storefront.ShippingFee,
				PromoCode:   cfg.Storefront.PromoCode,
				PromoAmount: cfg.Storefront.PromoAmount,
			},
			FeedbackDelay: cfg.Storefront.FeedbackDelay,
			RedirectDelay: cfg.Storefront.RedirectDelay,
		},
		TTL:           cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
		Logger:        logg,
		Metrics:       stats,
	})

	sweepDone := make(chan error, 1)
	go func() { sweepDone <- store.Run(ctx) }()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(cfg, logg, cat, resolver, store, stats, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	case runErr = <-serveErr:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	err := runErr
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		err = multierr.Append(err, shutdownErr)
	}
	if sweepErr := <-sweepDone; sweepErr != nil && !errors.Is(sweepErr, context.Canceled) {
		err = multierr.Append(err, sweepErr)
	}
	store.Close()

	if err == nil {
		logg.Info(logCtx, "api server stopped")
	}
	return err
}
