package discover

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/media"
)

// Section is one carousel of the home page.
type Section struct {
	Title string                  `json:"title"`
	Slug  string                  `json:"slug"`
	Items []media.ChartResultItem `json:"items"`
}

// Home is the landing page: a featured strip plus one carousel per chart.
type Home struct {
	Featured []media.ChartResultItem `json:"featured"`
	Sections []Section               `json:"sections"`
}

// homeCharts are the carousels shown on the landing page, in order.
var homeCharts = []charts.ID{
	charts.TrendingMovies,
	charts.TrendingTV,
	charts.TopRatedMovies,
	charts.TopRatedTV,
	charts.PopularAnime,
	charts.PopularCartoons,
	charts.UpcomingMovies,
	charts.AiringToday,
}

// Home loads the landing page concurrently. Each carousel degrades to an
// empty list on its own; the page itself never fails.
func (s *Service) Home(ctx context.Context) *Home {
	defs := make([]charts.Definition, 0, len(homeCharts))
	for _, id := range homeCharts {
		if d, ok := s.registry.Get(id); ok {
			defs = append(defs, d)
		}
	}

	home := &Home{Sections: make([]Section, len(defs))}
	nowPlaying, _ := s.registry.Get(charts.NowPlayingMovies)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.homeConcurrency)
	g.Go(func() error {
		home.Featured = s.ChartPage(gctx, nowPlaying, 1)
		return nil
	})
	for i, d := range defs {
		g.Go(func() error {
			home.Sections[i] = Section{
				Title: d.Name,
				Slug:  charts.Slug(d.Name),
				Items: s.ChartPage(gctx, d, 1),
			}
			return nil
		})
	}
	_ = g.Wait()
	return home
}
