package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC)

func TestAnimationQuery_Base(t *testing.T) {
	q := AnimationQuery(AnimationOptions{Preset: PresetPopular, OriginalLanguage: "ja"}, fixedNow)

	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "false", q.Get("include_adult"))
	assert.Equal(t, "false", q.Get("include_null_first_air_dates"))
	assert.Equal(t, "16", q.Get("with_genres"))
	assert.Equal(t, "ja", q.Get("with_original_language"))
	assert.Equal(t, "popularity.desc", q.Get("sort_by"))
}

func TestAnimationQuery_Presets(t *testing.T) {
	tests := []struct {
		preset Preset
		want   map[string]string
	}{
		{PresetTopRated, map[string]string{"sort_by": "vote_average.desc", "vote_count.gte": "200"}},
		{PresetAiringNow, map[string]string{"sort_by": "popularity.desc", "air_date.lte": "2024-03-15", "air_date.gte": "2024-02-14"}},
		{PresetUpcoming, map[string]string{"sort_by": "popularity.desc", "first_air_date.gte": "2024-03-15"}},
		{PresetClassics, map[string]string{"sort_by": "vote_average.desc", "vote_count.gte": "500", "first_air_date.lte": "2014-03-15"}},
		{PresetTrending, map[string]string{"sort_by": "popularity.desc", "first_air_date.gte": "2023-03-16"}},
		{PresetFamily, map[string]string{"sort_by": "vote_average.desc", "vote_count.gte": "100"}},
		{PresetKids, map[string]string{"sort_by": "popularity.desc", "vote_count.gte": "50"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			q := AnimationQuery(AnimationOptions{Preset: tt.preset, OriginalLanguage: "en", IncludeKids: true, Page: 3}, fixedNow)
			assert.Equal(t, "16,10762", q.Get("with_genres"))
			assert.Equal(t, "3", q.Get("page"))
			for k, v := range tt.want {
				assert.Equal(t, v, q.Get(k), k)
			}
		})
	}
}

func TestAnimationQuery_UsesUTCDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	now := time.Date(2024, time.March, 14, 23, 30, 0, 0, loc)

	q := AnimationQuery(AnimationOptions{Preset: PresetUpcoming}, now)
	assert.Equal(t, "2024-03-15", q.Get("first_air_date.gte"))
}

func TestKDramaQuery(t *testing.T) {
	top := KDramaQuery(KDramaOptions{Preset: PresetTopRated}, fixedNow)
	assert.Equal(t, "18", top.Get("with_genres"))
	assert.Equal(t, "KR", top.Get("with_origin_country"))
	assert.Equal(t, "vote_average.desc", top.Get("sort_by"))
	assert.Equal(t, "100", top.Get("vote_count.gte"))

	upcoming := KDramaQuery(KDramaOptions{Preset: PresetUpcoming, Page: 2}, fixedNow)
	assert.Equal(t, "first_air_date.desc", upcoming.Get("sort_by"))
	assert.Equal(t, "2024-03-15", upcoming.Get("first_air_date.gte"))
	assert.Equal(t, "2", upcoming.Get("page"))

	airing := KDramaQuery(KDramaOptions{Preset: PresetAiringNow}, fixedNow)
	assert.Equal(t, "2024-02-14", airing.Get("air_date.gte"))
}
