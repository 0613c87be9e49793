package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"route-sheet-service/internal/adapters/repositories"
	"route-sheet-service/internal/api"
	"route-sheet-service/internal/config"
	"route-sheet-service/internal/platform/logging"
	"route-sheet-service/internal/platform/metrics"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires the in-memory fleet and metrics behind the HTTP router and starts the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		log.WithError(err).Fatal("setup logging")
	}

	repo := repositories.NewMemoryTruckRepository()

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector, err = metrics.NewCollector(nil)
		if err != nil {
			log.WithError(err).Fatal("register metrics")
		}
	}

	// Optional fleet seed for local runs.
	if cfg.FleetSeedPath != "" {
		n, err := repositories.SeedFromJSON(context.Background(), repo, cfg.FleetSeedPath)
		if err != nil {
			log.WithError(err).WithField("path", cfg.FleetSeedPath).Fatal("seed fleet")
		}
		collector.SetTrucks(n)
		log.WithFields(log.Fields{"path": cfg.FleetSeedPath, "trucks": n}).Info("fleet seeded")
	}

	router := api.NewRouter(repo, collector)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
