package media

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/tmdb"
)

func TestNormalize_Idempotent(t *testing.T) {
	records := []tmdb.MediaRecord{
		{Kind: tmdb.KindMovie, ID: 1, Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: 8.3, PosterPath: "/heat.jpg"},
		{Kind: tmdb.KindTV, ID: 2, Name: "Dark", FirstAirDate: "2017-12-01"},
		{Kind: tmdb.KindTV, ID: 3},
	}

	first := Normalize(records, TV)
	second := Normalize(records, TV)
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestNormalize_PreservesOrderAndLength(t *testing.T) {
	records := []tmdb.MediaRecord{
		{Kind: tmdb.KindTV, ID: 30},
		{Kind: tmdb.KindTV, ID: 10},
		{Kind: tmdb.KindTV, ID: 20},
	}
	items := Normalize(records, TV)
	require.Len(t, items, 3)
	assert.Equal(t, int64(30), items[0].ID)
	assert.Equal(t, int64(10), items[1].ID)
	assert.Equal(t, int64(20), items[2].ID)

	assert.Empty(t, Normalize(nil, Movie))
}

func TestNormalize_MediaType(t *testing.T) {
	movie := tmdb.MediaRecord{Kind: tmdb.KindMovie, ID: 1, Title: "X"}
	show := tmdb.MediaRecord{Kind: tmdb.KindTV, ID: 2, Name: "Y"}
	untitledMovie := tmdb.MediaRecord{Kind: tmdb.KindMovie, ID: 3}
	untaggedMovie := tmdb.MediaRecord{ID: 4, Title: "Heat"}
	untaggedShow := tmdb.MediaRecord{ID: 5, Name: "Dark"}

	tests := []struct {
		name     string
		rec      tmdb.MediaRecord
		fallback Type
		want     Type
	}{
		{"titled movie in anime list", movie, Anime, Movie},
		{"titled movie in tv list", movie, TV, Movie},
		{"show in anime list", show, Anime, Anime},
		{"show in cartoon list", show, Cartoon, Cartoon},
		{"show in movie list", show, Movie, TV},
		{"show in tv list", show, TV, TV},
		{"untitled movie in movie list", untitledMovie, Movie, TV},
		{"untagged titled record in anime list", untaggedMovie, Anime, Movie},
		{"untagged named record in cartoon list", untaggedShow, Cartoon, Cartoon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeOne(tt.rec, tt.fallback).MediaType)
		})
	}
}

func TestNormalize_Title(t *testing.T) {
	assert.Equal(t, "Heat", NormalizeOne(tmdb.MediaRecord{Title: "Heat", Name: "Other"}, TV).Title)
	assert.Equal(t, "Dark", NormalizeOne(tmdb.MediaRecord{Name: "Dark"}, TV).Title)
	assert.Equal(t, "Untitled", NormalizeOne(tmdb.MediaRecord{}, TV).Title)
}

func TestNormalize_Year(t *testing.T) {
	empty := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindMovie, Title: "A", ReleaseDate: ""}, Movie)
	assert.Nil(t, empty.Year)

	dated := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindMovie, Title: "B", ReleaseDate: "2020-01-01"}, Movie)
	require.NotNil(t, dated.Year)
	assert.Equal(t, 2020, *dated.Year)

	show := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindTV, Name: "C", FirstAirDate: "2011-04-17"}, TV)
	require.NotNil(t, show.Year)
	assert.Equal(t, 2011, *show.Year)

	untagged := NormalizeOne(tmdb.MediaRecord{Title: "Heat", ReleaseDate: "1995-12-15"}, Anime)
	require.NotNil(t, untagged.Year)
	assert.Equal(t, 1995, *untagged.Year)
	assert.Equal(t, Movie, untagged.MediaType)

	untaggedShow := NormalizeOne(tmdb.MediaRecord{Name: "Dark", FirstAirDate: "2017-12-01"}, TV)
	require.NotNil(t, untaggedShow.Year)
	assert.Equal(t, 2017, *untaggedShow.Year)

	impossible := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindMovie, Title: "D", ReleaseDate: "2020-02-30"}, Movie)
	assert.Nil(t, impossible.Year)

	garbage := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindTV, FirstAirDate: "soon"}, TV)
	assert.Nil(t, garbage.Year)
}

func TestNormalize_VoteAverage(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeOne(tmdb.MediaRecord{VoteAverage: math.NaN()}, TV).VoteAverage)
	assert.Equal(t, 0.0, NormalizeOne(tmdb.MediaRecord{VoteAverage: math.Inf(1)}, TV).VoteAverage)
	assert.Equal(t, 7.5, NormalizeOne(tmdb.MediaRecord{VoteAverage: 7.5}, TV).VoteAverage)
}

func TestNormalize_JSONShape(t *testing.T) {
	item := NormalizeOne(tmdb.MediaRecord{Kind: tmdb.KindTV, ID: 9, Name: "Dark"}, TV)
	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"title":"Dark","overview":"","posterPath":null,"voteAverage":0,"mediaType":"tv"}`, string(data))
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2020-01-01", 2020, true},
		{"1999", 1999, true},
		{"2024-02", 2024, true},
		{"", 0, false},
		{"abc", 0, false},
		{"20201", 0, false},
		{"0000-01-01", 0, false},
		{"2020-13-45", 0, false},
		{"2020-02-30", 0, false},
		{"2020-xx", 0, false},
		{"2024-02-29", 2024, true},
	}
	for _, tt := range tests {
		got, ok := ParseYear(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType(" Anime ")
	assert.True(t, ok)
	assert.Equal(t, Anime, typ)

	_, ok = ParseType("documentary")
	assert.False(t, ok)
}
