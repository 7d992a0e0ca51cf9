package media

import (
	"math"
	"time"

	"github.com/vmunix/marquee/internal/tmdb"
)

const untitled = "Untitled"

// Normalize converts provider records into result items, one to one and in order.
// fallback is the category of the list being normalized; it decides the type of
// records that are not titled movies.
func Normalize(records []tmdb.MediaRecord, fallback Type) []ChartResultItem {
	items := make([]ChartResultItem, len(records))
	for i, rec := range records {
		items[i] = NormalizeOne(rec, fallback)
	}
	return items
}

// NormalizeOne converts a single record.
func NormalizeOne(rec tmdb.MediaRecord, fallback Type) ChartResultItem {
	item := ChartResultItem{
		ID:          rec.ID,
		Title:       displayTitle(rec),
		Overview:    rec.Overview,
		VoteAverage: finiteOrZero(rec.VoteAverage),
		MediaType:   resolveType(rec, fallback),
	}
	if rec.PosterPath != "" {
		p := rec.PosterPath
		item.PosterPath = &p
	}
	if y, ok := ParseYear(itemDate(rec)); ok {
		item.Year = &y
	}
	return item
}

func displayTitle(rec tmdb.MediaRecord) string {
	if rec.Title != "" {
		return rec.Title
	}
	if rec.Name != "" {
		return rec.Name
	}
	return untitled
}

// isMovie reports whether rec is a movie. Untagged records are judged by
// shape: movies carry a title, shows a name.
func isMovie(rec tmdb.MediaRecord) bool {
	switch rec.Kind {
	case tmdb.KindMovie:
		return true
	case 0:
		return rec.Title != ""
	}
	return false
}

func itemDate(rec tmdb.MediaRecord) string {
	switch {
	case rec.Kind == tmdb.KindMovie:
		return rec.ReleaseDate
	case rec.Kind == 0 && rec.ReleaseDate != "":
		return rec.ReleaseDate
	}
	return rec.FirstAirDate
}

func resolveType(rec tmdb.MediaRecord, fallback Type) Type {
	if isMovie(rec) && rec.Title != "" {
		return Movie
	}
	if fallback == Anime || fallback == Cartoon {
		return fallback
	}
	return TV
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// yearLayouts are the date forms a year is read from.
var yearLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseYear extracts the year from an ISO date ("2006-01-02"), a year-month
// ("2006-01") or a bare year. Empty input, impossible dates and anything
// else report false.
func ParseYear(date string) (int, bool) {
	for _, layout := range yearLayouts {
		if len(date) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, date)
		if err != nil || t.Year() <= 0 {
			return 0, false
		}
		return t.Year(), true
	}
	return 0, false
}
