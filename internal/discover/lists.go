package discover

import (
	"context"
	"fmt"

	"github.com/vmunix/marquee/internal/charts"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

// Fetch returns one page of a chart source. Unlike the other methods it
// reports provider errors, for callers that need to tell failure from an empty page.
func (s *Service) Fetch(ctx context.Context, src charts.Source, page int) ([]tmdb.MediaRecord, error) {
	p := s.provider
	switch src.List {
	case charts.ListTrendingMovies:
		return p.TrendingMovies(ctx, page)
	case charts.ListTopRatedMovies:
		return p.TopRatedMovies(ctx, page)
	case charts.ListUpcomingMovies:
		return p.UpcomingMovies(ctx, page)
	case charts.ListNowPlayingMovies:
		return p.NowPlayingMovies(ctx, page)
	case charts.ListPopularMovies:
		return p.PopularMovies(ctx, page)
	case charts.ListTrendingTV:
		return p.TrendingTV(ctx, page)
	case charts.ListTopRatedTV:
		return p.TopRatedTV(ctx, page)
	case charts.ListAiringTodayTV:
		return p.AiringTodayTV(ctx, page)
	case charts.ListOnTheAirTV:
		return p.OnTheAirTV(ctx, page)
	case charts.ListPopularTV:
		return p.PopularTV(ctx, page)
	case charts.ListAnimation:
		return p.DiscoverTV(ctx, tmdb.AnimationQuery(tmdb.AnimationOptions{
			Preset:           src.Preset,
			OriginalLanguage: src.OriginalLanguage,
			IncludeKids:      src.IncludeKids,
			Page:             page,
		}, s.now()))
	case charts.ListKDrama:
		return p.DiscoverTV(ctx, tmdb.KDramaQuery(tmdb.KDramaOptions{
			Preset: src.Preset,
			Page:   page,
		}, s.now()))
	default:
		return nil, fmt.Errorf("unknown chart source %d", src.List)
	}
}

// Chart returns one normalized page of the chart named by nameOrSlug.
// The boolean is false when no such chart is registered.
func (s *Service) Chart(ctx context.Context, nameOrSlug string, page int) ([]media.ChartResultItem, bool) {
	def, ok := s.registry.Lookup(nameOrSlug)
	if !ok {
		return nil, false
	}
	return s.ChartPage(ctx, def, page), true
}

// ChartPage returns one normalized page of a chart. Failures yield an empty page.
func (s *Service) ChartPage(ctx context.Context, def charts.Definition, page int) []media.ChartResultItem {
	records, err := s.Fetch(ctx, def.Source, page)
	if !s.absorb("chart", err, "chart", def.Name, "page", page) {
		return []media.ChartResultItem{}
	}
	return media.Normalize(records, def.Category)
}

// Data returns a raw provider list for a collection type and category.
// Unknown combinations and failures yield an empty list.
func (s *Service) Data(ctx context.Context, typ, category string, page int) []tmdb.MediaRecord {
	l, ok := charts.LookupData(typ, category)
	if !ok {
		return []tmdb.MediaRecord{}
	}
	records, err := s.Fetch(ctx, l.Source, page)
	if !s.absorb("data", err, "type", typ, "category", category, "page", page) {
		return []tmdb.MediaRecord{}
	}
	return orEmpty(records)
}

// Genre returns a raw page of titles in genreID. typ is "movies" or "shows".
func (s *Service) Genre(ctx context.Context, typ string, genreID, page int) []tmdb.MediaRecord {
	var (
		records []tmdb.MediaRecord
		err     error
	)
	if typ == "movies" {
		records, err = s.provider.MoviesByGenre(ctx, genreID, page)
	} else {
		records, err = s.provider.TVByGenre(ctx, genreID, page)
	}
	if !s.absorb("genre", err, "type", typ, "genre", genreID, "page", page) {
		return []tmdb.MediaRecord{}
	}
	return orEmpty(records)
}

// GenreItems returns a normalized, sorted page of a category's genre.
// Movies are discovered as films; every other category as series.
func (s *Service) GenreItems(ctx context.Context, category media.Type, genreID, page int, sortBy media.SortOption) []media.ChartResultItem {
	typ := "shows"
	if category == media.Movie {
		typ = "movies"
	}
	items := media.Normalize(s.Genre(ctx, typ, genreID, page), category)
	media.Sort(items, sortBy)
	return items
}

// Search returns normalized multi-search results. A blank query returns
// an empty list without a provider call.
func (s *Service) Search(ctx context.Context, query string, page int) []media.ChartResultItem {
	if tmdb.NormalizeQuery(query) == "" {
		return []media.ChartResultItem{}
	}
	records, err := s.provider.Search(ctx, query, page)
	if !s.absorb("search", err, "page", page) {
		return []media.ChartResultItem{}
	}
	return media.Normalize(records, media.TV)
}

// Episodes returns the episodes of one season. Failures yield an empty list.
func (s *Service) Episodes(ctx context.Context, tvID int64, seasonNumber int) []tmdb.Episode {
	season, err := s.provider.Season(ctx, tvID, seasonNumber)
	if !s.absorb("episodes", err, "tv_id", tvID, "season", seasonNumber) {
		return []tmdb.Episode{}
	}
	if season == nil {
		return []tmdb.Episode{}
	}
	return orEmpty(season.Episodes)
}

// Collection returns a movie collection, or false when it is unavailable.
func (s *Service) Collection(ctx context.Context, id int64) (*tmdb.Collection, bool) {
	col, err := s.provider.Collection(ctx, id)
	if !s.absorb("collection", err, "id", id) {
		return nil, false
	}
	return col, true
}
