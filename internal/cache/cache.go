// Package cache provides time-boxed storage for provider responses.
//
// Three backends implement Store: an in-process map, a SQLite table and
// Redis. Entries expire after the TTL passed to Set; nothing is ever served
// past its expiry.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-redis/redis"

	"github.com/vmunix/marquee/internal/migrations"
)

// Store is a response cache backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Prune removes expired entries and returns how many were removed.
	Prune(ctx context.Context) (int64, error)
	// Name identifies the backend ("memory", "sqlite", "redis").
	Name() string
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver        string
	Path          string // sqlite database file
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string // redis key namespace
}

// Open creates the backend named by opts.Driver. An empty driver is memory.
func Open(ctx context.Context, opts Options, log *slog.Logger) (Store, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "cache")

	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), nil

	case DriverSQLite:
		if dir := filepath.Dir(opts.Path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create cache dir: %w", err)
			}
		}
		db, err := sql.Open("sqlite", opts.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache db: %w", err)
		}
		if err := migrations.Apply(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate cache db: %w", err)
		}
		log.Info("sqlite cache ready", "path", opts.Path)
		return NewSQLite(db), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.WithContext(ctx).Ping().Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", opts.RedisAddr, err)
		}
		log.Info("redis cache ready", "addr", opts.RedisAddr)
		return NewRedis(client, opts.KeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown cache driver %q", opts.Driver)
	}
}
