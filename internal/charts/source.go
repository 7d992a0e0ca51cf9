package charts

import "github.com/vmunix/marquee/internal/tmdb"

// List names a provider list or discovery family.
type List int

const (
	ListTrendingMovies List = iota + 1
	ListTopRatedMovies
	ListUpcomingMovies
	ListNowPlayingMovies
	ListPopularMovies
	ListTrendingTV
	ListTopRatedTV
	ListAiringTodayTV
	ListOnTheAirTV
	ListPopularTV
	ListAnimation // discover/tv with an animation preset
	ListKDrama    // discover/tv restricted to Korean dramas
)

var listNames = map[List]string{
	ListTrendingMovies:   "trending/movie/week",
	ListTopRatedMovies:   "movie/top_rated",
	ListUpcomingMovies:   "movie/upcoming",
	ListNowPlayingMovies: "movie/now_playing",
	ListPopularMovies:    "movie/popular",
	ListTrendingTV:       "trending/tv/week",
	ListTopRatedTV:       "tv/top_rated",
	ListAiringTodayTV:    "tv/airing_today",
	ListOnTheAirTV:       "tv/on_the_air",
	ListPopularTV:        "tv/popular",
	ListAnimation:        "discover/tv (animation)",
	ListKDrama:           "discover/tv (k-drama)",
}

func (l List) String() string {
	if s, ok := listNames[l]; ok {
		return s
	}
	return "unknown"
}

// Source describes how to fetch a chart page.
type Source struct {
	List List

	// Used by ListAnimation and ListKDrama only.
	Preset           tmdb.Preset
	OriginalLanguage string
	IncludeKids      bool
}

func provider(l List) Source {
	return Source{List: l}
}

func anime(p tmdb.Preset) Source {
	return Source{List: ListAnimation, Preset: p, OriginalLanguage: "ja"}
}

func cartoon(p tmdb.Preset) Source {
	return Source{List: ListAnimation, Preset: p, OriginalLanguage: "en", IncludeKids: true}
}

func kdrama(p tmdb.Preset) Source {
	return Source{List: ListKDrama, Preset: p}
}
