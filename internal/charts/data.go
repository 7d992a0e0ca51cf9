package charts

import (
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

// DataKey selects a raw list by collection type ("movies" or "shows") and category.
type DataKey struct {
	Type     string
	Category string
}

// DataList is a raw list served without normalization.
type DataList struct {
	Source   Source
	Category media.Type
}

var dataLists = map[DataKey]DataList{
	{"movies", "top"}:           {provider(ListTopRatedMovies), media.Movie},
	{"movies", "top_rated"}:     {provider(ListTopRatedMovies), media.Movie},
	{"movies", "upcoming"}:      {provider(ListUpcomingMovies), media.Movie},
	{"movies", "on_air"}:        {provider(ListNowPlayingMovies), media.Movie},
	{"movies", "international"}: {provider(ListPopularMovies), media.Movie},

	{"shows", "top"}:       {provider(ListTopRatedTV), media.TV},
	{"shows", "top_rated"}: {provider(ListTopRatedTV), media.TV},
	{"shows", "upcoming"}:  {provider(ListOnTheAirTV), media.TV},
	{"shows", "on_air"}:    {provider(ListAiringTodayTV), media.TV},

	{"shows", "anime_top"}:      {anime(tmdb.PresetTopRated), media.Anime},
	{"shows", "anime_upcoming"}: {anime(tmdb.PresetUpcoming), media.Anime},
	{"shows", "anime_on_air"}:   {anime(tmdb.PresetAiringNow), media.Anime},

	{"shows", "cartoon_top"}:      {cartoon(tmdb.PresetTopRated), media.Cartoon},
	{"shows", "cartoon_upcoming"}: {cartoon(tmdb.PresetUpcoming), media.Cartoon},
	{"shows", "cartoon_on_air"}:   {cartoon(tmdb.PresetAiringNow), media.Cartoon},

	{"shows", "kdrama_top"}:      {kdrama(tmdb.PresetTopRated), media.TV},
	{"shows", "kdrama_upcoming"}: {kdrama(tmdb.PresetUpcoming), media.TV},
	{"shows", "kdrama_on_air"}:   {kdrama(tmdb.PresetAiringNow), media.TV},
}

// LookupData returns the raw list for a type/category pair.
func LookupData(typ, category string) (DataList, bool) {
	l, ok := dataLists[DataKey{Type: typ, Category: category}]
	return l, ok
}
