package discover

import (
	"context"
	"errors"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/tmdb"
)

func (s *Service) trailerBreaker(kind tmdb.Kind) *breaker.Breaker {
	if kind == tmdb.KindMovie {
		return s.movieTrailers
	}
	return s.tvTrailers
}

// Trailers returns a title's YouTube videos with teasers first.
// Lookups go through the kind's breaker: after repeated failures they return
// an empty list without contacting the provider until the breaker is reset.
func (s *Service) Trailers(ctx context.Context, kind tmdb.Kind, id int64) []tmdb.Trailer {
	b := s.trailerBreaker(kind)
	videos, err := breaker.Do(ctx, b, func(ctx context.Context) ([]tmdb.Trailer, error) {
		return s.provider.Videos(ctx, kind, id)
	})
	if errors.Is(err, breaker.ErrOpen) {
		return []tmdb.Trailer{}
	}
	if !s.absorb("trailers", err, "kind", kind.String(), "id", id, "failures", b.Failures()) {
		return []tmdb.Trailer{}
	}
	return tmdb.PrioritizeTeasers(videos)
}

// TrailerBreakers returns the state of both trailer breakers.
func (s *Service) TrailerBreakers() []breaker.Snapshot {
	return []breaker.Snapshot{s.movieTrailers.Snapshot(), s.tvTrailers.Snapshot()}
}

// ResetTrailers closes both trailer breakers.
func (s *Service) ResetTrailers() []breaker.Snapshot {
	s.movieTrailers.Reset()
	s.tvTrailers.Reset()
	s.log.Info("trailer breakers reset")
	return s.TrailerBreakers()
}
