package charts

import (
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

// ID identifies a registered chart. The zero value is not a chart.
type ID int

const (
	TrendingMovies ID = iota + 1
	TopRatedMovies
	UpcomingMovies
	NowPlayingMovies
	PopularMovies
	PopularInternationalMovies
	TopRatedInternationalMovies
	UpcomingInternationalMovies

	TrendingTV
	TopRatedTV
	AiringToday
	OnTheAir
	PopularTV
	PopularInternationalTV
	TopRatedInternationalTV
	UpcomingInternationalTV

	PopularAnime
	TopRatedAnime
	AiringNowAnime
	UpcomingAnime
	AllTimeClassics
	PopularInternationalAnime
	TopRatedInternationalAnime
	UpcomingInternationalAnime

	PopularCartoons
	TopRatedCartoons
	KidsFavorites
	TrendingCartoons
	FamilyFriendly
	PopularInternationalCartoons
	TopInternationalCartoons
	UpcomingInternationalCartoons

	numIDs
)

// Definition is one registered chart.
type Definition struct {
	ID       ID
	Name     string
	Category media.Type
	Source   Source
	// AliasOf is the chart this one serves, or zero. Aliases share the
	// target's Source.
	AliasOf ID
}

// IsAlias reports whether the chart re-serves another chart.
func (d Definition) IsAlias() bool { return d.AliasOf != 0 }

func def(id ID, name string, cat media.Type, src Source) Definition {
	return Definition{ID: id, Name: name, Category: cat, Source: src}
}

func alias(id ID, name string, cat media.Type, target ID) Definition {
	return Definition{ID: id, Name: name, Category: cat, AliasOf: target}
}

// definitions is indexed by display order; NewRegistry resolves aliases.
var definitions = []Definition{
	def(TrendingMovies, "Trending Movies", media.Movie, provider(ListTrendingMovies)),
	def(TopRatedMovies, "Top Rated Movies", media.Movie, provider(ListTopRatedMovies)),
	def(UpcomingMovies, "Upcoming Movies", media.Movie, provider(ListUpcomingMovies)),
	def(NowPlayingMovies, "Now Playing Movies", media.Movie, provider(ListNowPlayingMovies)),
	def(PopularMovies, "Popular Movies", media.Movie, provider(ListPopularMovies)),
	alias(PopularInternationalMovies, "Popular International Movies", media.Movie, PopularMovies),
	alias(TopRatedInternationalMovies, "Top Rated International Movies", media.Movie, TopRatedMovies),
	alias(UpcomingInternationalMovies, "Upcoming International Movies", media.Movie, UpcomingMovies),

	def(TrendingTV, "Trending TV Shows", media.TV, provider(ListTrendingTV)),
	def(TopRatedTV, "Top Rated TV Shows", media.TV, provider(ListTopRatedTV)),
	def(AiringToday, "Airing Today", media.TV, provider(ListAiringTodayTV)),
	def(OnTheAir, "On The Air", media.TV, provider(ListOnTheAirTV)),
	def(PopularTV, "Popular TV Shows", media.TV, provider(ListPopularTV)),
	alias(PopularInternationalTV, "Popular International TV Shows", media.TV, PopularTV),
	alias(TopRatedInternationalTV, "Top Rated International TV Shows", media.TV, TopRatedTV),
	alias(UpcomingInternationalTV, "Upcoming International TV Shows", media.TV, OnTheAir),

	def(PopularAnime, "Popular Anime", media.Anime, anime(tmdb.PresetPopular)),
	def(TopRatedAnime, "Top Rated Anime", media.Anime, anime(tmdb.PresetTopRated)),
	def(AiringNowAnime, "Airing Now", media.Anime, anime(tmdb.PresetAiringNow)),
	def(UpcomingAnime, "Upcoming Anime", media.Anime, anime(tmdb.PresetUpcoming)),
	def(AllTimeClassics, "All Time Classics", media.Anime, anime(tmdb.PresetClassics)),
	alias(PopularInternationalAnime, "Popular International Anime", media.Anime, PopularAnime),
	alias(TopRatedInternationalAnime, "Top Rated International Anime", media.Anime, TopRatedAnime),
	alias(UpcomingInternationalAnime, "Upcoming International Anime", media.Anime, UpcomingAnime),

	def(PopularCartoons, "Popular Cartoons", media.Cartoon, cartoon(tmdb.PresetPopular)),
	def(TopRatedCartoons, "Top Rated Cartoons", media.Cartoon, cartoon(tmdb.PresetTopRated)),
	def(KidsFavorites, "Kids Favorites", media.Cartoon, cartoon(tmdb.PresetKids)),
	def(TrendingCartoons, "Trending Cartoons", media.Cartoon, cartoon(tmdb.PresetTrending)),
	def(FamilyFriendly, "Family Friendly", media.Cartoon, cartoon(tmdb.PresetFamily)),
	alias(PopularInternationalCartoons, "Popular International Cartoons", media.Cartoon, PopularCartoons),
	alias(TopInternationalCartoons, "Top International Cartoons", media.Cartoon, TopRatedCartoons),
	// Serves the upcoming cartoon preset, which has no chart of its own.
	def(UpcomingInternationalCartoons, "Upcoming International", media.Cartoon, cartoon(tmdb.PresetUpcoming)),
}

// sectionTitles are the index headings per category.
var sectionTitles = map[media.Type]string{
	media.Movie:   "Movies",
	media.TV:      "TV Shows",
	media.Anime:   "Anime",
	media.Cartoon: "Cartoons",
}
