// Package server runs the HTTP API and its background maintenance.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pruner removes expired cache entries.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// Config for the runner.
type Config struct {
	Addr            string
	PruneInterval   time.Duration // zero disables pruning
	ShutdownTimeout time.Duration
}

// Runner serves the API until its context ends, then drains connections.
type Runner struct {
	handler http.Handler
	pruner  Pruner
	config  Config
	logger  *slog.Logger

	// ready receives the bound address once the listener is up.
	ready chan net.Addr
}

// NewRunner creates a new runner. pruner may be nil.
func NewRunner(handler http.Handler, pruner Pruner, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &Runner{
		handler: handler,
		pruner:  pruner,
		config:  cfg,
		logger:  logger.With("component", "runner"),
		ready:   make(chan net.Addr, 1),
	}
}

// Ready delivers the listen address once the server accepts connections.
func (r *Runner) Ready() <-chan net.Addr {
	return r.ready
}

// Run starts the HTTP server and the prune loop.
// It blocks until the context is canceled or a component fails, and returns
// nil after a clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		r.ready <- ln.Addr()
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.pruner != nil && r.config.PruneInterval > 0 {
		g.Go(func() error {
			r.runPruner(gctx)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) runPruner(ctx context.Context) {
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()

	r.logger.Info("cache pruner started", "interval", r.config.PruneInterval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("cache pruner stopped")
			return
		case <-ticker.C:
			r.prune(ctx)
		}
	}
}

func (r *Runner) prune(ctx context.Context) {
	n, err := r.pruner.Prune(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("cache prune failed", "error", err)
		}
		return
	}
	if n > 0 {
		r.logger.Debug("cache pruned", "removed", n)
	}
}
