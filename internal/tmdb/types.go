// Package tmdb provides a client for The Movie Database API.
package tmdb

import (
	"encoding/json"
	"strconv"
)

// Kind tags a record with the provider list it was decoded from.
type Kind int

const (
	KindMovie Kind = iota + 1
	KindTV
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindTV:
		return "tv"
	default:
		return "unknown"
	}
}

// ParseKind accepts "movie" or "tv".
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "movie":
		return KindMovie, true
	case "tv":
		return KindTV, true
	}
	return 0, false
}

// MediaRecord is a raw list entry as returned by the provider.
// Movie records populate Title and ReleaseDate; TV records populate Name,
// FirstAirDate and OriginCountry. Kind is set by the client right after decoding.
type MediaRecord struct {
	Kind Kind `json:"-"`

	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	ReleaseDate      string   `json:"release_date"` // "2024-03-01"
	Name             string   `json:"name"`
	FirstAirDate     string   `json:"first_air_date"`
	OriginCountry    []string `json:"origin_country"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"` // "/abc123.jpg"
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginalLanguage string   `json:"original_language"`
}

type movieShape struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	ReleaseDate      string  `json:"release_date"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language,omitempty"`
}

type tvShape struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	FirstAirDate     string   `json:"first_air_date"`
	OriginCountry    []string `json:"origin_country,omitempty"`
	Overview         string   `json:"overview"`
	PosterPath       *string  `json:"poster_path"`
	BackdropPath     *string  `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginalLanguage string   `json:"original_language,omitempty"`
}

// MarshalJSON writes the record back in the provider's shape for its kind,
// so pass-through endpoints serve what the provider would have served.
func (r MediaRecord) MarshalJSON() ([]byte, error) {
	genres := r.GenreIDs
	if genres == nil {
		genres = []int{}
	}
	if r.Kind == KindMovie {
		return json.Marshal(movieShape{
			ID:               r.ID,
			Title:            r.Title,
			ReleaseDate:      r.ReleaseDate,
			Overview:         r.Overview,
			PosterPath:       nullable(r.PosterPath),
			BackdropPath:     nullable(r.BackdropPath),
			VoteAverage:      r.VoteAverage,
			VoteCount:        r.VoteCount,
			Popularity:       r.Popularity,
			GenreIDs:         genres,
			OriginalLanguage: r.OriginalLanguage,
		})
	}
	return json.Marshal(tvShape{
		ID:               r.ID,
		Name:             r.Name,
		FirstAirDate:     r.FirstAirDate,
		OriginCountry:    r.OriginCountry,
		Overview:         r.Overview,
		PosterPath:       nullable(r.PosterPath),
		BackdropPath:     nullable(r.BackdropPath),
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		GenreIDs:         genres,
		OriginalLanguage: r.OriginalLanguage,
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Genre represents a provider genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Trailer is a video attached to a title.
type Trailer struct {
	ID   string `json:"id"`
	Key  string `json:"key"` // YouTube video id
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"` // "Trailer", "Teaser", "Clip", ...
}

// CastMember is one billed cast entry.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CollectionRef is the short collection entry embedded in movie details.
type CollectionRef struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// MovieDetails is the full movie record.
type MovieDetails struct {
	ID                  int64          `json:"id"`
	IMDBID              string         `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title               string         `json:"title"`
	Tagline             string         `json:"tagline"`
	Overview            string         `json:"overview"`
	ReleaseDate         string         `json:"release_date"`
	Status              string         `json:"status"`
	Runtime             int            `json:"runtime"` // minutes
	PosterPath          string         `json:"poster_path"`
	BackdropPath        string         `json:"backdrop_path"`
	VoteAverage         float64        `json:"vote_average"`
	VoteCount           int            `json:"vote_count"`
	Homepage            string         `json:"homepage"`
	Genres              []Genre        `json:"genres"`
	BelongsToCollection *CollectionRef `json:"belongs_to_collection"`
}

// Year extracts the year from ReleaseDate.
func (m *MovieDetails) Year() int {
	return leadingYear(m.ReleaseDate)
}

// SeasonSummary is a season entry embedded in TV details.
type SeasonSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// TVDetails is the full TV series record.
type TVDetails struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Tagline          string          `json:"tagline"`
	Overview         string          `json:"overview"`
	FirstAirDate     string          `json:"first_air_date"`
	LastAirDate      string          `json:"last_air_date"`
	Status           string          `json:"status"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	OriginCountry    []string        `json:"origin_country"`
	PosterPath       string          `json:"poster_path"`
	BackdropPath     string          `json:"backdrop_path"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	Homepage         string          `json:"homepage"`
	Genres           []Genre         `json:"genres"`
	Seasons          []SeasonSummary `json:"seasons"`
}

// Year extracts the year from FirstAirDate.
func (t *TVDetails) Year() int {
	return leadingYear(t.FirstAirDate)
}

// Episode is one episode of a season.
type Episode struct {
	ID            int64   `json:"id"`
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	StillPath     string  `json:"still_path"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
}

// Season is a season with its episodes.
type Season struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SeasonNumber int       `json:"season_number"`
	AirDate      string    `json:"air_date"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	Episodes     []Episode `json:"episodes"`
}

// Collection groups related movies.
type Collection struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Overview     string        `json:"overview"`
	PosterPath   string        `json:"poster_path"`
	BackdropPath string        `json:"backdrop_path"`
	Parts        []MediaRecord `json:"parts"`
}

func leadingYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
