package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/config"
	"github.com/actuallystonmai/stylesense-service/internal/handler"
	"github.com/actuallystonmai/stylesense-service/internal/logging"
	"github.com/actuallystonmai/stylesense-service/internal/metrics"
	"github.com/actuallystonmai/stylesense-service/internal/model"
	"github.com/actuallystonmai/stylesense-service/internal/router"
	"github.com/actuallystonmai/stylesense-service/internal/service"
	"github.com/actuallystonmai/stylesense-service/internal/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

// run wires the application and serves until shutdown.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx := context.Background()

	// ------------ Store backend ---------------
	// for migrate-down using CLI command
	migrateDownOnly := len(os.Args) > 1 && os.Args[1] == "migrate-down"

	kv, closeStore, err := openStore(ctx, cfg, migrateDownOnly)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	defer closeStore()
	if migrateDownOnly {
		return nil
	}

	// ------------ Gateway ---------------
	reg := metrics.NewRegistry()
	llm := model.NewClient(model.Options{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.UpstreamBaseURL,
		Model:   cfg.UpstreamModel,
	})
	svc := service.NewService(llm, cfg.UpstreamTimeout, reg)
	h := handler.NewHandler(svc, store.New(kv))

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, reg, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	logrus.WithFields(logrus.Fields{
		"addr":  cfg.Addr(),
		"store": cfg.StoreBackend,
		"model": cfg.UpstreamModel,
	}).Info("server running")
	return serve(srv, stop)
}

// serve runs srv until it fails or a signal arrives on stop, then shuts it
// down gracefully.
func serve(srv *http.Server, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
