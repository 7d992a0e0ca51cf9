package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/discover"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/vmunix/marquee/internal/api/v1 Catalog

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog is the browse service behind the routes. Implementations absorb
// provider failures; every list they return is non-nil.
type Catalog interface {
	Data(ctx context.Context, typ, category string, page int) []tmdb.MediaRecord
	Search(ctx context.Context, query string, page int) []media.ChartResultItem
	Chart(ctx context.Context, nameOrSlug string, page int) ([]media.ChartResultItem, bool)
	Genre(ctx context.Context, typ string, genreID, page int) []tmdb.MediaRecord
	Trailers(ctx context.Context, kind tmdb.Kind, id int64) []tmdb.Trailer
	TrailerBreakers() []breaker.Snapshot
	ResetTrailers() []breaker.Snapshot
	Episodes(ctx context.Context, tvID int64, seasonNumber int) []tmdb.Episode
	Title(ctx context.Context, kind tmdb.Kind, id int64) (*discover.Title, bool)
	Collection(ctx context.Context, id int64) (*tmdb.Collection, bool)
	Home(ctx context.Context) *discover.Home
}

var _ Catalog = (*discover.Service)(nil)

// CacheInfo reports the response cache backend for the status route.
type CacheInfo interface {
	Name() string
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog  Catalog
	Registry *charts.Registry

	// Optional dependencies (nil if not configured)
	Cache CacheInfo
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return fmt.Errorf("%w: catalog", ErrMissingDependency)
	}
	if d.Registry == nil {
		return fmt.Errorf("%w: chart registry", ErrMissingDependency)
	}
	return nil
}
