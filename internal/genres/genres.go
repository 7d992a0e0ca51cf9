// Package genres maps human-facing genre labels to provider genre ids per category.
//
// Anime and cartoon tables reuse the movie and TV genre id space; several
// anime labels (Magic, Shounen, School, ...) are aliases of broader genres.
package genres

import (
	"strings"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/slug"
)

// Genre is one label/id pair.
type Genre struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
}

// Table is an ordered genre list for one category.
type Table []Genre

var movieGenres = Table{
	{"Action", 28},
	{"Adventure", 12},
	{"Animation", 16},
	{"Comedy", 35},
	{"Crime", 80},
	{"Documentary", 99},
	{"Drama", 18},
	{"Family", 10751},
	{"Fantasy", 14},
	{"History", 36},
	{"Horror", 27},
	{"Music", 10402},
	{"Mystery", 9648},
	{"Romance", 10749},
	{"Science Fiction", 878},
	{"TV Movie", 10770},
	{"Thriller", 53},
	{"War", 10752},
	{"Western", 37},
}

var tvGenres = Table{
	{"Action & Adventure", 10759},
	{"Animation", 16},
	{"Comedy", 35},
	{"Crime", 80},
	{"Documentary", 99},
	{"Drama", 18},
	{"Family", 10751},
	{"Kids", 10762},
	{"Mystery", 9648},
	{"News", 10763},
	{"Reality", 10764},
	{"Sci-Fi & Fantasy", 10765},
	{"Soap", 10766},
	{"Talk", 10767},
	{"War & Politics", 10768},
	{"Western", 37},
}

var animeGenres = Table{
	{"Action", 28},
	{"Adventure", 12},
	{"Comedy", 35},
	{"Drama", 18},
	{"Fantasy", 14},
	{"Horror", 27},
	{"Magic", 10749},
	{"Mystery", 9648},
	{"Psychological", 9648},
	{"Romance", 10749},
	{"School", 10751},
	{"Science Fiction", 878},
	{"Shounen", 35},
	{"Shoujo", 10749},
	{"Seinen", 18},
	{"Supernatural", 14},
	{"Thriller", 53},
}

var cartoonGenres = Table{
	{"Action", 28},
	{"Adventure", 12},
	{"Comedy", 35},
	{"Drama", 18},
	{"Family", 10751},
	{"Fantasy", 14},
	{"Kids", 10762},
	{"Mystery", 9648},
	{"Science Fiction", 878},
}

// For returns the table for a category. Unknown categories get the movie table.
func For(category media.Type) Table {
	switch category {
	case media.TV:
		return tvGenres
	case media.Anime:
		return animeGenres
	case media.Cartoon:
		return cartoonGenres
	default:
		return movieGenres
	}
}

// ID returns the genre id for a label, case-insensitively.
func (t Table) ID(label string) (int, bool) {
	label = strings.TrimSpace(label)
	for _, g := range t {
		if strings.EqualFold(g.Label, label) {
			return g.ID, true
		}
	}
	return 0, false
}

// Label returns the first label mapped to id.
func (t Table) Label(id int) (string, bool) {
	for _, g := range t {
		if g.ID == id {
			return g.Label, true
		}
	}
	return "", false
}

// Labels returns the labels in display order.
func (t Table) Labels() []string {
	out := make([]string, len(t))
	for i, g := range t {
		out[i] = g.Label
	}
	return out
}

// Lookup resolves a label or its slug ("science-fiction") within a category.
func Lookup(category media.Type, labelOrSlug string) (Genre, bool) {
	labelOrSlug = strings.TrimSpace(labelOrSlug)
	want := slug.Make(labelOrSlug)
	for _, g := range For(category) {
		if strings.EqualFold(g.Label, labelOrSlug) || slug.Make(g.Label) == want {
			return g, true
		}
	}
	return Genre{}, false
}
