package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/marquee/internal/tmdb"
)

func yearPtr(y int) *int { return &y }

func ids(items []ChartResultItem) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func sample() []ChartResultItem {
	return []ChartResultItem{
		{ID: 1, VoteAverage: 6.0, Year: yearPtr(2001)},
		{ID: 2, VoteAverage: 8.5, Year: nil},
		{ID: 3, VoteAverage: 7.0, Year: yearPtr(2019)},
		{ID: 4, VoteAverage: 8.5, Year: yearPtr(1985)},
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		by   SortOption
		want []int64
	}{
		{SortPopularity, []int64{1, 2, 3, 4}},
		{SortRating, []int64{2, 4, 3, 1}},
		{SortNewest, []int64{3, 1, 4, 2}},
		{SortOldest, []int64{4, 1, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			items := sample()
			Sort(items, tt.by)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestSortRecords(t *testing.T) {
	records := []tmdb.MediaRecord{
		{ID: 1, ReleaseDate: "2001-05-01", VoteAverage: 5},
		{ID: 2, FirstAirDate: "2019-01-01", VoteAverage: 9},
		{ID: 3, VoteAverage: 7},
		{ID: 4, ReleaseDate: "2001-06-01", VoteAverage: 1},
	}

	newest := append([]tmdb.MediaRecord(nil), records...)
	SortRecords(newest, SortNewest)
	assert.Equal(t, []int64{2, 4, 1, 3}, recordIDs(newest))

	oldest := append([]tmdb.MediaRecord(nil), records...)
	SortRecords(oldest, SortOldest)
	assert.Equal(t, []int64{1, 4, 2, 3}, recordIDs(oldest))

	rated := append([]tmdb.MediaRecord(nil), records...)
	SortRecords(rated, SortRating)
	assert.Equal(t, []int64{2, 3, 1, 4}, recordIDs(rated))
}

func recordIDs(records []tmdb.MediaRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortRating, ParseSort("rating"))
	assert.Equal(t, SortPopularity, ParseSort(""))
	assert.Equal(t, SortPopularity, ParseSort("bogus"))
}
