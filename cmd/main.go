package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/tescoboy/sales-agent2/internal/adapter/http"
	"github.com/tescoboy/sales-agent2/internal/adapter/rpc"
	"github.com/tescoboy/sales-agent2/internal/adapter/usecase"
	"github.com/tescoboy/sales-agent2/internal/config"
)

// main is the entry point of the campaign workflow service. It loads
// configuration, initializes the remote agent clients and the orchestrator,
// then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "text":
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Remote agent clients. The baseline retry policy performs a single
	// attempt per call.
	signalsAgent := rpc.NewSignalsClient(
		cfg.Agents.SignalsURL,
		cfg.Agents.RequestTimeout,
		cfg.Agents.HealthTimeout,
		rpc.RetryPolicy{},
	)
	salesAgent := rpc.NewSalesClient(
		cfg.Agents.SalesURL,
		cfg.Agents.AuthToken,
		cfg.Agents.TenantID,
		cfg.Agents.RequestTimeout,
		cfg.Agents.HealthTimeout,
		rpc.RetryPolicy{},
	)

	svc := usecase.NewCampaignUseCase(signalsAgent, salesAgent, usecase.Options{
		ActivationFanout: cfg.Agents.ActivationFanout,
		ProductFanout:    cfg.Agents.ProductFanout,
	}, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler.Router(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("server listening",
			slog.String("addr", cfg.HTTP.Addr()),
			slog.String("signals_agent", cfg.Agents.SignalsURL),
			slog.String("sales_agent", cfg.Agents.SalesURL))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
