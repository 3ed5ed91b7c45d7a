package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bsblogistics/dispatchboard-backend/api/routes"
	"github.com/bsblogistics/dispatchboard-backend/internal/containers"
	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/internal/seed"
	"github.com/bsblogistics/dispatchboard-backend/pkg/config"
	"github.com/bsblogistics/dispatchboard-backend/pkg/logger"
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

	store := fleet.NewStore()
	containerRepo := containers.NewRepository()

	if cfg.Seed.Demo {
		seed.Demo(store, containerRepo, time.Now())
		logg.Info(context.Background(), "demo fixtures loaded")
	}

	fleetService, err := fleet.NewService(fleet.ServiceParams{
		Store:         store,
		WindowBack:    cfg.Schedule.WindowBack,
		WindowForward: cfg.Schedule.WindowForward,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create fleet service", err)
		os.Exit(1)
	}

	containerService, err := containers.NewService(containers.ServiceParams{
		Repo:  containerRepo,
		Trips: store,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create containers service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:     cfg,
			Logger:     logg,
			Fleet:      fleetService,
			Containers: containerService,
			Registry:   registry,
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "shutdown incomplete", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	}
}
