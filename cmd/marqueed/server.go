package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/discover"
	"github.com/vmunix/marquee/internal/server"
	"github.com/vmunix/marquee/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger writes text logs to stdout and, when a log file is configured,
// to a size-rotated copy of it. The returned func releases the file.
func newLogger(cfg config.ServerConfig, stdout io.Writer) (*slog.Logger, func() error) {
	w := stdout
	closer := func() error { return nil }
	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(stdout, rotator)
		closer = rotator.Close
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	return logger, closer
}

func loadConfig(path string) (*config.Config, error) {
	// A .env in the working directory is honored before discovery.
	if err := config.LoadEnvFiles(".env"); err != nil {
		return nil, err
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = found
	}
	return config.Load(path)
}

// app is the wired service graph.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	store   cache.Store
	api     *v1.Server
	handler http.Handler
}

func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	store, err := cache.Open(ctx, cache.Options{
		Driver:        cfg.Cache.Driver,
		Path:          cfg.Cache.Path,
		RedisAddr:     cfg.Cache.RedisAddr,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
		KeyPrefix:     cfg.Cache.KeyPrefix,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	client := tmdb.New(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
		tmdb.WithRateLimit(rate.Limit(cfg.TMDB.RequestsPerSecond), cfg.TMDB.Burst),
		tmdb.WithCache(store),
		tmdb.WithLogger(logger),
	)

	registry := charts.Default()
	svc := discover.New(client, discover.Options{
		Registry:         registry,
		FailureThreshold: cfg.Trailers.FailureThreshold,
		HomeConcurrency:  cfg.Home.Concurrency,
		Logger:           logger,
	})

	api, err := v1.New(v1.ServerDeps{
		Catalog:  svc,
		Registry: registry,
		Cache:    store,
	}, v1.Config{
		Version:     version,
		CacheMaxAge: tmdb.DefaultTTL,
		RateLimit:   rate.Limit(cfg.Server.RateLimit),
		RateBurst:   cfg.Server.RateBurst,
		Logger:      logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("api: %w", err)
	}

	return &app{cfg: cfg, log: logger, store: store, api: api, handler: api.Handler()}, nil
}

func (a *app) Close() {
	a.api.Close()
	if err := a.store.Close(); err != nil {
		a.log.Warn("close cache", "error", err)
	}
}

func runServer(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog := newLogger(cfg.Server, os.Stdout)
	defer func() { _ = closeLog() }()
	for _, w := range cfg.Warnings() {
		logger.Warn("config", "detail", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("server starting",
		"addr", cfg.Addr(),
		"version", version,
		"cache", a.store.Name(),
		"language", cfg.TMDB.Language,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(a.handler, a.store, server.Config{
		Addr:          cfg.Addr(),
		PruneInterval: cfg.Cache.PruneInterval,
	}, logger)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
