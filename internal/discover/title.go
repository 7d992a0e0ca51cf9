package discover

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

// Title is everything a detail page shows about one title.
type Title struct {
	Kind     tmdb.Kind               `json:"-"`
	Movie    *tmdb.MovieDetails      `json:"movie,omitempty"`
	TV       *tmdb.TVDetails         `json:"tv,omitempty"`
	Cast     []tmdb.CastMember       `json:"cast"`
	Similar  []media.ChartResultItem `json:"similar"`
	Trailers []tmdb.Trailer          `json:"trailers"`
}

// maxCast bounds the cast list on a detail page.
const maxCast = 20

// Title loads a detail page. Details are required; cast, similar titles and
// trailers degrade to empty lists independently. The boolean is false when
// the details cannot be loaded.
func (s *Service) Title(ctx context.Context, kind tmdb.Kind, id int64) (*Title, bool) {
	t := &Title{Kind: kind}
	var detailsErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if kind == tmdb.KindMovie {
			t.Movie, detailsErr = s.provider.MovieDetails(gctx, id)
		} else {
			t.TV, detailsErr = s.provider.TVDetails(gctx, id)
		}
		return nil
	})
	g.Go(func() error {
		cast, err := s.provider.Credits(gctx, kind, id)
		if !s.absorb("credits", err, "kind", kind.String(), "id", id) {
			cast = nil
		}
		if len(cast) > maxCast {
			cast = cast[:maxCast]
		}
		t.Cast = orEmpty(cast)
		return nil
	})
	g.Go(func() error {
		var (
			similar []tmdb.MediaRecord
			err     error
		)
		fallback := media.TV
		if kind == tmdb.KindMovie {
			similar, err = s.provider.SimilarMovies(gctx, id, 1)
			fallback = media.Movie
		} else {
			similar, err = s.provider.SimilarTV(gctx, id, 1)
		}
		if !s.absorb("similar", err, "kind", kind.String(), "id", id) {
			similar = nil
		}
		t.Similar = media.Normalize(similar, fallback)
		return nil
	})
	g.Go(func() error {
		t.Trailers = s.Trailers(gctx, kind, id)
		return nil
	})
	_ = g.Wait()

	if !s.absorb("details", detailsErr, "kind", kind.String(), "id", id) {
		return nil, false
	}
	return t, true
}
