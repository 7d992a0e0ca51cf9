package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/discover"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

func TestListTrailers(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().Trailers(gomock.Any(), tmdb.KindTV, int64(1396)).Return([]tmdb.Trailer{
		{Key: "HhesaQXLuRY", Site: "YouTube", Type: "Teaser"},
	})

	w := env.do(t, http.MethodGet, "/api/v1/trailers?type=tv&id=1396")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[trailersResponse](t, w)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "HhesaQXLuRY", resp.Results[0].Key)
}

func TestListTrailers_Validation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   string
	}{
		{"missing type", "/api/v1/trailers?id=1", "INVALID_TYPE"},
		{"bad type", "/api/v1/trailers?type=anime&id=1", "INVALID_TYPE"},
		{"missing id", "/api/v1/trailers?type=movie", "INVALID_ID"},
		{"bad id", "/api/v1/trailers?type=movie&id=x", "INVALID_ID"},
		{"zero id", "/api/v1/trailers?type=movie&id=0", "INVALID_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, Config{})
			w := env.do(t, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode[errorResponse](t, w).Code)
		})
	}
}

func TestResetTrailers(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().ResetTrailers().Return([]breaker.Snapshot{
		{Name: "movie-trailers", State: breaker.Closed},
		{Name: "tv-trailers", State: breaker.Closed},
	})

	w := env.do(t, http.MethodPost, "/api/v1/trailers/reset")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"breakers":[
		{"name":"movie-trailers","state":"closed","failures":0},
		{"name":"tv-trailers","state":"closed","failures":0}
	]}`, w.Body.String())
}

func TestListEpisodes(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t, Config{})
		env.catalog.EXPECT().Episodes(gomock.Any(), int64(1399), 0).Return([]tmdb.Episode{{EpisodeNumber: 1}})

		w := env.do(t, http.MethodGet, "/api/v1/episodes?tvId=1399&seasonNumber=0")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[episodesResponse](t, w).Episodes, 1)
	})

	t.Run("failure is empty", func(t *testing.T) {
		env := newTestEnv(t, Config{})
		env.catalog.EXPECT().Episodes(gomock.Any(), int64(1399), 9).Return([]tmdb.Episode{})

		w := env.do(t, http.MethodGet, "/api/v1/episodes?tvId=1399&seasonNumber=9")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"episodes":[]}`, w.Body.String())
	})

	t.Run("missing params", func(t *testing.T) {
		env := newTestEnv(t, Config{})
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/episodes?seasonNumber=1").Code)
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/episodes?tvId=1399").Code)
	})
}

func TestGetTitle(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().Title(gomock.Any(), tmdb.KindMovie, int64(603)).Return(&discover.Title{
		Kind:     tmdb.KindMovie,
		Movie:    &tmdb.MovieDetails{ID: 603, Title: "The Matrix"},
		Cast:     []tmdb.CastMember{{Name: "Keanu Reeves"}},
		Similar:  []media.ChartResultItem{},
		Trailers: []tmdb.Trailer{},
	}, true)

	w := env.do(t, http.MethodGet, "/api/v1/titles/movie/603")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string]any](t, w)
	assert.Equal(t, "movie", resp["type"])
	details, ok := resp["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "The Matrix", details["title"])
	assert.Len(t, resp["cast"], 1)
	assert.Equal(t, []any{}, resp["similar"])
}

func TestGetTitle_Errors(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().Title(gomock.Any(), tmdb.KindTV, int64(5)).Return(nil, false)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/titles/anime/5").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/titles/tv/abc").Code)

	w := env.do(t, http.MethodGet, "/api/v1/titles/tv/5")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorResponse](t, w).Code)
}

func TestGetCollection(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.catalog.EXPECT().Collection(gomock.Any(), int64(10)).Return(&tmdb.Collection{
		ID:    10,
		Name:  "Star Wars Collection",
		Parts: []tmdb.MediaRecord{{Kind: tmdb.KindMovie, ID: 11, Title: "Star Wars"}},
	}, true)
	env.catalog.EXPECT().Collection(gomock.Any(), int64(12)).Return(nil, false)

	w := env.do(t, http.MethodGet, "/api/v1/collections/10")
	require.Equal(t, http.StatusOK, w.Code)
	col := decode[map[string]any](t, w)
	assert.Equal(t, "Star Wars Collection", col["name"])

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/collections/12").Code)
}

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t, Config{Version: "1.2.3"})
	env.srv.deps.Cache = stubCache{name: "sqlite"}
	env.catalog.EXPECT().TrailerBreakers().Return([]breaker.Snapshot{
		{Name: "movie-trailers", State: breaker.Open, Failures: 3},
		{Name: "tv-trailers", State: breaker.Closed},
	})

	w := env.do(t, http.MethodGet, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[statusResponse](t, w)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "sqlite", resp.Cache)
	assert.Equal(t, 32, resp.Charts)
	require.Len(t, resp.Breakers, 2)
	assert.Equal(t, breaker.Open, resp.Breakers[0].State)
}
