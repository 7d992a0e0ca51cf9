// Package discover serves the browse views: charts, genre lists, search,
// trailers and title pages. Provider failures are logged and degrade to empty
// results; callers never see a provider error.
package discover

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/tmdb"
)

//go:generate mockgen -destination=mocks/provider.go -package=mocks github.com/vmunix/marquee/internal/discover Provider

// Provider is the subset of the TMDB client the service uses.
type Provider interface {
	TrendingMovies(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	TopRatedMovies(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	PopularMovies(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	UpcomingMovies(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	NowPlayingMovies(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	TrendingTV(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	TopRatedTV(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	PopularTV(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	OnTheAirTV(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	AiringTodayTV(ctx context.Context, page int) ([]tmdb.MediaRecord, error)
	MoviesByGenre(ctx context.Context, genreID, page int) ([]tmdb.MediaRecord, error)
	TVByGenre(ctx context.Context, genreID, page int) ([]tmdb.MediaRecord, error)
	DiscoverTV(ctx context.Context, params url.Values) ([]tmdb.MediaRecord, error)
	SimilarMovies(ctx context.Context, id int64, page int) ([]tmdb.MediaRecord, error)
	SimilarTV(ctx context.Context, id int64, page int) ([]tmdb.MediaRecord, error)
	Search(ctx context.Context, query string, page int) ([]tmdb.MediaRecord, error)
	Videos(ctx context.Context, kind tmdb.Kind, id int64) ([]tmdb.Trailer, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
	TVDetails(ctx context.Context, id int64) (*tmdb.TVDetails, error)
	Credits(ctx context.Context, kind tmdb.Kind, id int64) ([]tmdb.CastMember, error)
	Collection(ctx context.Context, id int64) (*tmdb.Collection, error)
	Season(ctx context.Context, tvID int64, seasonNumber int) (*tmdb.Season, error)
}

var _ Provider = (*tmdb.Client)(nil)

// Options configures a Service. Zero values get defaults.
type Options struct {
	Registry         *charts.Registry
	MovieTrailers    *breaker.Breaker
	TVTrailers       *breaker.Breaker
	FailureThreshold int // used when a breaker is not supplied
	HomeConcurrency  int
	Now              func() time.Time
	Logger           *slog.Logger
}

// Service aggregates provider calls into view-ready results.
type Service struct {
	provider        Provider
	registry        *charts.Registry
	movieTrailers   *breaker.Breaker
	tvTrailers      *breaker.Breaker
	homeConcurrency int
	now             func() time.Time
	log             *slog.Logger
}

// New creates a Service.
func New(provider Provider, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = charts.Default()
	}
	if opts.MovieTrailers == nil {
		opts.MovieTrailers = breaker.New("movie-trailers", opts.FailureThreshold, opts.Logger)
	}
	if opts.TVTrailers == nil {
		opts.TVTrailers = breaker.New("tv-trailers", opts.FailureThreshold, opts.Logger)
	}
	if opts.HomeConcurrency < 1 {
		opts.HomeConcurrency = 4
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		provider:        provider,
		registry:        opts.Registry,
		movieTrailers:   opts.MovieTrailers,
		tvTrailers:      opts.TVTrailers,
		homeConcurrency: opts.HomeConcurrency,
		now:             opts.Now,
		log:             opts.Logger.With("component", "discover"),
	}
}

// Registry returns the chart registry the service resolves against.
func (s *Service) Registry() *charts.Registry { return s.registry }

// absorb logs a provider failure and reports whether err was nil.
// Canceled requests are logged at debug level.
func (s *Service) absorb(op string, err error, args ...any) bool {
	if err == nil {
		return true
	}
	args = append(args, "op", op, "error", err)
	if errors.Is(err, context.Canceled) {
		s.log.Debug("provider call canceled", args...)
		return false
	}
	s.log.Warn("provider call failed", args...)
	return false
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
