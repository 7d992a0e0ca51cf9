package tmdb

import (
	"net/url"
	"strconv"
	"time"
)

// Preset names a discovery query shape.
type Preset string

const (
	PresetPopular   Preset = "popular"
	PresetTopRated  Preset = "topRated"
	PresetAiringNow Preset = "airingNow"
	PresetUpcoming  Preset = "upcoming"
	PresetClassics  Preset = "classics"
	PresetTrending  Preset = "trending"
	PresetFamily    Preset = "family"
	PresetKids      Preset = "kids"
)

// Provider genre ids used by the presets.
const (
	GenreAnimation = 16
	GenreDrama     = 18
	GenreKids      = 10762
)

// AnimationOptions selects an animated-series chart.
type AnimationOptions struct {
	Preset           Preset
	OriginalLanguage string // "ja" for anime, "en" for cartoons
	IncludeKids      bool
	Page             int
}

// AnimationQuery builds discover/tv parameters for an animated-series chart.
// Date bounds are computed from now in UTC.
func AnimationQuery(opts AnimationOptions, now time.Time) url.Values {
	q := discoverBase(opts.Page)
	q.Set("sort_by", "popularity.desc")
	if opts.IncludeKids {
		q.Set("with_genres", strconv.Itoa(GenreAnimation)+","+strconv.Itoa(GenreKids))
	} else {
		q.Set("with_genres", strconv.Itoa(GenreAnimation))
	}
	if opts.OriginalLanguage != "" {
		q.Set("with_original_language", opts.OriginalLanguage)
	}

	today := now.UTC()
	switch opts.Preset {
	case PresetTopRated:
		q.Set("sort_by", "vote_average.desc")
		q.Set("vote_count.gte", "200")
	case PresetAiringNow:
		q.Set("air_date.lte", formatDate(today))
		q.Set("air_date.gte", formatDate(today.AddDate(0, 0, -30)))
	case PresetUpcoming:
		q.Set("first_air_date.gte", formatDate(today))
	case PresetClassics:
		q.Set("sort_by", "vote_average.desc")
		q.Set("vote_count.gte", "500")
		q.Set("first_air_date.lte", formatDate(today.AddDate(-10, 0, 0)))
	case PresetTrending:
		q.Set("first_air_date.gte", formatDate(today.AddDate(0, 0, -365)))
	case PresetFamily:
		q.Set("sort_by", "vote_average.desc")
		q.Set("vote_count.gte", "100")
	case PresetKids:
		q.Set("vote_count.gte", "50")
	}
	return q
}

// KDramaOptions selects a Korean drama chart.
type KDramaOptions struct {
	Preset Preset // PresetTopRated, PresetUpcoming or PresetAiringNow
	Page   int
}

// KDramaQuery builds discover/tv parameters for Korean dramas.
func KDramaQuery(opts KDramaOptions, now time.Time) url.Values {
	q := discoverBase(opts.Page)
	q.Set("with_genres", strconv.Itoa(GenreDrama))
	q.Set("with_origin_country", "KR")

	today := now.UTC()
	switch opts.Preset {
	case PresetTopRated:
		q.Set("sort_by", "vote_average.desc")
		q.Set("vote_count.gte", "100")
	case PresetAiringNow:
		q.Set("sort_by", "popularity.desc")
		q.Set("air_date.lte", formatDate(today))
		q.Set("air_date.gte", formatDate(today.AddDate(0, 0, -30)))
	default:
		q.Set("sort_by", "first_air_date.desc")
		q.Set("first_air_date.gte", formatDate(today))
	}
	return q
}

func discoverBase(page int) url.Values {
	return url.Values{
		"page":                         {strconv.Itoa(normalizePage(page))},
		"include_adult":                {"false"},
		"include_null_first_air_dates": {"false"},
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
