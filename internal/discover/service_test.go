package discover

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/discover/mocks"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/tmdb"
)

var (
	errUpstream = errors.New("upstream unavailable")
	fixedNow    = time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	provider *mocks.MockProvider
	svc      *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProvider(ctrl)
	svc := New(p, Options{
		Now:    func() time.Time { return fixedNow },
		Logger: testLogger(),
	})
	return &testEnv{provider: p, svc: svc}
}

func movie(id int64, title, date string) tmdb.MediaRecord {
	return tmdb.MediaRecord{Kind: tmdb.KindMovie, ID: id, Title: title, ReleaseDate: date}
}

func show(id int64, name, date string) tmdb.MediaRecord {
	return tmdb.MediaRecord{Kind: tmdb.KindTV, ID: id, Name: name, FirstAirDate: date}
}

func TestChart_DispatchesBySlug(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().TrendingMovies(gomock.Any(), 2).
		Return([]tmdb.MediaRecord{movie(27205, "Inception", "2010-07-15")}, nil)

	items, ok := env.svc.Chart(context.Background(), "trending-movies", 2)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(27205), items[0].ID)
	assert.Equal(t, "Inception", items[0].Title)
	assert.Equal(t, media.Movie, items[0].MediaType)
	require.NotNil(t, items[0].Year)
	assert.Equal(t, 2010, *items[0].Year)
}

func TestChart_AliasServesTarget(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().PopularMovies(gomock.Any(), 1).
		Return([]tmdb.MediaRecord{movie(1, "Parasite", "2019-05-30")}, nil)

	items, ok := env.svc.Chart(context.Background(), "Popular International Movies", 1)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Parasite", items[0].Title)
}

func TestChart_AnimationUsesClock(t *testing.T) {
	env := newTestEnv(t)
	want := tmdb.AnimationQuery(tmdb.AnimationOptions{
		Preset:           tmdb.PresetAiringNow,
		OriginalLanguage: "ja",
		Page:             3,
	}, fixedNow)
	env.provider.EXPECT().DiscoverTV(gomock.Any(), want).
		Return([]tmdb.MediaRecord{show(37854, "One Piece", "1999-10-20")}, nil)

	items, ok := env.svc.Chart(context.Background(), "Airing Now", 3)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, media.Anime, items[0].MediaType)
	assert.Equal(t, "One Piece", items[0].Title)
}

func TestChart_Unknown(t *testing.T) {
	env := newTestEnv(t)

	items, ok := env.svc.Chart(context.Background(), "no-such-chart", 1)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestChart_ProviderErrorYieldsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().TopRatedTV(gomock.Any(), 1).Return(nil, errUpstream)

	items, ok := env.svc.Chart(context.Background(), "top-rated-tv-shows", 1)
	require.True(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetch_ReportsErrors(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().AiringTodayTV(gomock.Any(), 1).Return(nil, errUpstream)

	def, ok := env.svc.Registry().Lookup("airing-today")
	require.True(t, ok)
	_, err := env.svc.Fetch(context.Background(), def.Source, 1)
	assert.ErrorIs(t, err, errUpstream)
}

func TestData(t *testing.T) {
	t.Run("known list", func(t *testing.T) {
		env := newTestEnv(t)
		want := tmdb.KDramaQuery(tmdb.KDramaOptions{Preset: tmdb.PresetAiringNow, Page: 1}, fixedNow)
		env.provider.EXPECT().DiscoverTV(gomock.Any(), want).
			Return([]tmdb.MediaRecord{show(1, "Queen of Tears", "2024-03-09")}, nil)

		got := env.svc.Data(context.Background(), "shows", "kdrama_on_air", 1)
		require.Len(t, got, 1)
		assert.Equal(t, "Queen of Tears", got[0].Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		env := newTestEnv(t)
		got := env.svc.Data(context.Background(), "movies", "anime_top", 1)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("provider failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.EXPECT().NowPlayingMovies(gomock.Any(), 1).Return(nil, errUpstream)

		got := env.svc.Data(context.Background(), "movies", "on_air", 1)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGenreItems_SortsAndRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().TVByGenre(gomock.Any(), 16, 1).Return([]tmdb.MediaRecord{
		show(1, "Older", "2001-01-01"),
		show(2, "Undated", ""),
		show(3, "Newer", "2020-01-01"),
	}, nil)

	items := env.svc.GenreItems(context.Background(), media.Anime, 16, 1, media.SortNewest)
	require.Len(t, items, 3)
	assert.Equal(t, "Newer", items[0].Title)
	assert.Equal(t, "Older", items[1].Title)
	assert.Equal(t, "Undated", items[2].Title)
	assert.Equal(t, media.Anime, items[0].MediaType)
}

func TestGenre_Movies(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().MoviesByGenre(gomock.Any(), 28, 2).
		Return([]tmdb.MediaRecord{movie(1, "Heat", "1995-12-15")}, nil)

	got := env.svc.Genre(context.Background(), "movies", 28, 2)
	require.Len(t, got, 1)
}

func TestSearch(t *testing.T) {
	t.Run("blank query skips provider", func(t *testing.T) {
		env := newTestEnv(t)
		got := env.svc.Search(context.Background(), "  <> ", 1)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("mixed results", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.EXPECT().Search(gomock.Any(), "dune", 1).Return([]tmdb.MediaRecord{
			movie(438631, "Dune", "2021-09-15"),
			show(90228, "Dune: Prophecy", "2024-11-17"),
		}, nil)

		got := env.svc.Search(context.Background(), "dune", 1)
		require.Len(t, got, 2)
		assert.Equal(t, media.Movie, got[0].MediaType)
		assert.Equal(t, media.TV, got[1].MediaType)
	})

	t.Run("failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.EXPECT().Search(gomock.Any(), "dune", 1).Return(nil, errUpstream)
		assert.Empty(t, env.svc.Search(context.Background(), "dune", 1))
	})
}

func TestEpisodes(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().Season(gomock.Any(), int64(1399), 1).
		Return(&tmdb.Season{Episodes: []tmdb.Episode{{EpisodeNumber: 1, Name: "Winter Is Coming"}}}, nil)
	env.provider.EXPECT().Season(gomock.Any(), int64(1399), 99).Return(nil, tmdb.ErrNotFound)

	got := env.svc.Episodes(context.Background(), 1399, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Winter Is Coming", got[0].Name)

	missing := env.svc.Episodes(context.Background(), 1399, 99)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestCollection(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().Collection(gomock.Any(), int64(10)).
		Return(&tmdb.Collection{ID: 10, Name: "Star Wars Collection"}, nil)
	env.provider.EXPECT().Collection(gomock.Any(), int64(11)).Return(nil, tmdb.ErrNotFound)

	col, ok := env.svc.Collection(context.Background(), 10)
	require.True(t, ok)
	assert.Equal(t, "Star Wars Collection", col.Name)

	_, ok = env.svc.Collection(context.Background(), 11)
	assert.False(t, ok)
}
