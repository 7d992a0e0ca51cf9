// Package paginate accumulates successive pages of a list behind a
// load-more action.
package paginate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrBusy is returned when a load is already in flight.
	ErrBusy = errors.New("load already in progress")
	// ErrExhausted is returned once the end of the list has been reached.
	ErrExhausted = errors.New("no more pages")
)

// FetchFunc returns one page of results. Pages are 1-based.
type FetchFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Accumulator appends pages of T in request order. Items are not deduplicated.
type Accumulator[T any] struct {
	fetch    FetchFunc[T]
	trackEnd bool
	log      *slog.Logger

	mu      sync.Mutex
	items   []T
	page    int
	loading bool
	hasMore bool
}

// Option configures an Accumulator.
type Option func(*config)

type config struct {
	trackEnd  bool
	startPage int
	log       *slog.Logger
}

// WithTrackEnd makes an empty or failed page mark the list as exhausted.
func WithTrackEnd(track bool) Option {
	return func(c *config) { c.trackEnd = track }
}

// WithStartPage sets the page the initial items correspond to. Default 1.
func WithStartPage(page int) Option {
	return func(c *config) { c.startPage = page }
}

// WithLogger sets the logger for fetch failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// New creates an accumulator seeded with the first page's items.
func New[T any](fetch FetchFunc[T], initial []T, opts ...Option) *Accumulator[T] {
	cfg := config{startPage: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.startPage < 1 {
		cfg.startPage = 1
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}
	return &Accumulator[T]{
		fetch:    fetch,
		trackEnd: cfg.trackEnd,
		log:      cfg.log.With("component", "paginate"),
		items:    append([]T(nil), initial...),
		page:     cfg.startPage,
		hasMore:  true,
	}
}

// LoadMore fetches the next page and appends it. It returns the number of
// items added. Calls made while a load is in flight return ErrBusy.
// A fetch error is logged and leaves the items unchanged; with end tracking
// it also marks the list exhausted.
func (a *Accumulator[T]) LoadMore(ctx context.Context) (int, error) {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return 0, ErrBusy
	}
	if a.trackEnd && !a.hasMore {
		a.mu.Unlock()
		return 0, ErrExhausted
	}
	a.loading = true
	next := a.page + 1
	a.mu.Unlock()

	batch, err := a.fetch(ctx, next)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false

	if err != nil {
		a.log.Warn("load more failed", "page", next, "error", err)
		if a.trackEnd {
			a.hasMore = false
		}
		return 0, err
	}
	if len(batch) == 0 {
		if a.trackEnd {
			a.hasMore = false
		}
		return 0, nil
	}
	a.items = append(a.items, batch...)
	a.page = next
	return len(batch), nil
}

// Items returns a copy of the accumulated items.
func (a *Accumulator[T]) Items() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]T(nil), a.items...)
}

// Page returns the last successfully loaded page.
func (a *Accumulator[T]) Page() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// Loading reports whether a fetch is in flight.
func (a *Accumulator[T]) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// HasMore reports whether another page may exist. Always true without end tracking.
func (a *Accumulator[T]) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.trackEnd || a.hasMore
}

// Reset replaces the items with a fresh first page.
func (a *Accumulator[T]) Reset(initial []T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = append([]T(nil), initial...)
	a.page = 1
	a.hasMore = true
}
