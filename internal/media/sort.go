package media

import (
	"slices"

	"github.com/vmunix/marquee/internal/tmdb"
)

// SortOption is a client-side ordering of a loaded list.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortRating     SortOption = "rating"
	SortNewest     SortOption = "newest"
	SortOldest     SortOption = "oldest"
)

// ParseSort returns the option named s, or SortPopularity for anything else.
func ParseSort(s string) SortOption {
	switch SortOption(s) {
	case SortRating, SortNewest, SortOldest:
		return SortOption(s)
	}
	return SortPopularity
}

// Sort orders items in place. Popularity keeps provider order.
// Items without a year sort last for both date orders.
func Sort(items []ChartResultItem, by SortOption) {
	switch by {
	case SortRating:
		slices.SortStableFunc(items, func(a, b ChartResultItem) int {
			return cmpDesc(a.VoteAverage, b.VoteAverage)
		})
	case SortNewest:
		slices.SortStableFunc(items, func(a, b ChartResultItem) int {
			return cmpYears(a.Year, b.Year, true)
		})
	case SortOldest:
		slices.SortStableFunc(items, func(a, b ChartResultItem) int {
			return cmpYears(a.Year, b.Year, false)
		})
	}
}

// SortRecords orders raw provider records in place using the same options.
// Date orders compare full ISO dates, which sort lexically.
func SortRecords(records []tmdb.MediaRecord, by SortOption) {
	switch by {
	case SortRating:
		slices.SortStableFunc(records, func(a, b tmdb.MediaRecord) int {
			return cmpDesc(a.VoteAverage, b.VoteAverage)
		})
	case SortNewest, SortOldest:
		slices.SortStableFunc(records, func(a, b tmdb.MediaRecord) int {
			da, db := recordDate(a), recordDate(b)
			switch {
			case da == db:
				return 0
			case da == "":
				return 1
			case db == "":
				return -1
			case (da > db) == (by == SortNewest):
				return -1
			default:
				return 1
			}
		})
	}
}

func recordDate(r tmdb.MediaRecord) string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

func cmpDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func cmpYears(a, b *int, newestFirst bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a == *b:
		return 0
	case (*a > *b) == newestFirst:
		return -1
	}
	return 1
}
