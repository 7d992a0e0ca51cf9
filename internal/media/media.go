// Package media defines the normalized result shape served to the views and
// the conversion from raw provider records into it.
package media

import "strings"

// Type is the display category of a result.
type Type string

const (
	Movie   Type = "movie"
	TV      Type = "tv"
	Anime   Type = "anime"
	Cartoon Type = "cartoon"
)

// Types lists every category in display order.
var Types = []Type{Movie, TV, Anime, Cartoon}

// Valid reports whether t is one of the known categories.
func (t Type) Valid() bool {
	switch t {
	case Movie, TV, Anime, Cartoon:
		return true
	}
	return false
}

// ParseType parses a category name, case-insensitively.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// ChartResultItem is the normalized result shape.
type ChartResultItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"posterPath"`
	Year        *int    `json:"year,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	MediaType   Type    `json:"mediaType"`
}
