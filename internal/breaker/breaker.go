// Package breaker implements a consecutive-failure circuit breaker.
//
// A Breaker opens after a fixed number of consecutive failures and stays open
// until a success is recorded or Reset is called. There is no timed recovery.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultThreshold is the number of consecutive failures that opens a breaker.
const DefaultThreshold = 3

// ErrOpen is returned by Do when the breaker rejects a call.
var ErrOpen = errors.New("circuit open")

// State is the breaker position.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// MarshalText renders the state as "open" or "closed".
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses "open" or "closed".
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "open":
		*s = Open
	case "closed":
		*s = Closed
	default:
		return fmt.Errorf("unknown breaker state %q", b)
	}
	return nil
}

// Breaker counts consecutive failures for one category of calls.
type Breaker struct {
	name      string
	threshold int
	log       *slog.Logger

	mu       sync.Mutex
	failures int
	open     bool
}

// New creates a closed breaker. A threshold below 1 uses DefaultThreshold.
func New(name string, threshold int, log *slog.Logger) *Breaker {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = slog.Default()
	}
	return &Breaker{
		name:      name,
		threshold: threshold,
		log:       log.With("component", "breaker", "breaker", name),
	}
}

// Name returns the breaker's category name.
func (b *Breaker) Name() string { return b.name }

// Allow reports whether a call may proceed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.open
}

// Success clears the failure count and closes the breaker.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open {
		b.log.Info("breaker closed after success")
	}
	b.failures = 0
	b.open = false
}

// Failure records a failed call. The breaker opens when the count reaches
// the threshold; the error is logged only on that transition.
func (b *Breaker) Failure(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold && !b.open {
		b.open = true
		b.log.Error("breaker opened", "failures", b.failures, "error", err)
	}
}

// Reset closes the breaker and clears the failure count.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open {
		b.log.Info("breaker reset")
	}
	b.failures = 0
	b.open = false
}

// State returns the current position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open {
		return Open
	}
	return Closed
}

// Failures returns the consecutive failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Snapshot is a point-in-time view of a breaker.
type Snapshot struct {
	Name     string `json:"name"`
	State    State  `json:"state"`
	Failures int    `json:"failures"`
}

// Snapshot returns the breaker's current state.
func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Snapshot{Name: b.name, State: Closed, Failures: b.failures}
	if b.open {
		s.State = Open
	}
	return s
}

// Do runs fn when b allows it and records the outcome.
// It returns ErrOpen without calling fn when b is open.
func Do[T any](ctx context.Context, b *Breaker, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if !b.Allow() {
		return zero, ErrOpen
	}
	v, err := fn(ctx)
	if err != nil {
		// A canceled caller says nothing about the provider.
		if ctx.Err() == nil {
			b.Failure(err)
		}
		return zero, err
	}
	b.Success()
	return v, nil
}
