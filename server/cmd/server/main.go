package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/server/internal/alerts"
	"github.com/healthtech/healthtech/server/internal/api"
	"github.com/healthtech/healthtech/server/internal/config"
	"github.com/healthtech/healthtech/server/internal/metrics"
	"github.com/healthtech/healthtech/server/internal/store"
	"github.com/healthtech/healthtech/server/internal/web"
	"github.com/healthtech/healthtech/server/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "path to config file; empty runs on defaults")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Server.Level()}))
	slog.SetDefault(logger)

	loc, err := cfg.Server.Location()
	if err != nil {
		slog.Error("invalid timezone", "timezone", cfg.Server.Timezone, "err", err)
		os.Exit(1)
	}

	slog.Info("healthtech-server starting",
		"config", *configPath,
		"http_port", cfg.Server.HTTPPort,
		"timezone", loc.String(),
		"alert_rules", len(cfg.Server.Alerts.Rules),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The session log lives exactly as long as this process.
	log := store.New(loc)

	alertEngine := alerts.New(cfg.Server.Alerts)
	submitter := api.NewSubmitter(log, alertEngine)

	if *configPath != "" {
		go func() {
			if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				alertEngine.SetRules(updated.Server.Alerts)
			}); err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	hub := ws.New(log, cfg.Server.Hub.Interval)
	submitter.OnRecord(func(types.HealthRecord) { hub.Notify() })
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.New(submitter, log, alertEngine))
	mux.Handle("/ws/session", hub)
	mux.Handle("/metrics", metrics.New(log))
	mux.Handle("/", web.New(cfg.Server.Title, submitter, log))

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("healthtech-server shutting down", "records", log.Len())

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	httpSrv.Shutdown(shutdownCtx) //nolint:errcheck
}
