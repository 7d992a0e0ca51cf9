package discover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/breaker"
	"github.com/vmunix/marquee/internal/tmdb"
)

func TestTrailers_TeasersFirst(t *testing.T) {
	env := newTestEnv(t)
	env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, int64(603)).Return([]tmdb.Trailer{
		{Key: "a", Type: "Trailer"},
		{Key: "b", Type: "Teaser"},
		{Key: "c", Type: "Clip"},
		{Key: "d", Type: "Teaser"},
	}, nil)

	got := env.svc.Trailers(context.Background(), tmdb.KindMovie, 603)
	keys := make([]string, len(got))
	for i, v := range got {
		keys[i] = v.Key
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, keys)
}

func TestTrailers_BreakerOpensAfterThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Exactly three provider calls; the fourth lookup must short-circuit.
	env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, gomock.Any()).
		Return(nil, errUpstream).Times(breaker.DefaultThreshold)

	for i := 0; i < breaker.DefaultThreshold; i++ {
		got := env.svc.Trailers(ctx, tmdb.KindMovie, int64(i))
		assert.Empty(t, got)
	}

	got := env.svc.Trailers(ctx, tmdb.KindMovie, 99)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	snaps := env.svc.TrailerBreakers()
	require.Len(t, snaps, 2)
	assert.Equal(t, "movie-trailers", snaps[0].Name)
	assert.Equal(t, breaker.Open, snaps[0].State)
	assert.Equal(t, breaker.Closed, snaps[1].State)
}

func TestTrailers_BreakersAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, gomock.Any()).
		Return(nil, errUpstream).Times(breaker.DefaultThreshold)
	env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindTV, int64(1399)).
		Return([]tmdb.Trailer{{Key: "got"}}, nil)

	for i := 0; i < breaker.DefaultThreshold; i++ {
		env.svc.Trailers(ctx, tmdb.KindMovie, int64(i))
	}

	got := env.svc.Trailers(ctx, tmdb.KindTV, 1399)
	require.Len(t, got, 1)
	assert.Equal(t, "got", got[0].Key)
}

func TestTrailers_ResetClosesBreakers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gomock.InOrder(
		env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindTV, gomock.Any()).
			Return(nil, errUpstream).Times(breaker.DefaultThreshold),
		env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindTV, int64(7)).
			Return([]tmdb.Trailer{{Key: "back"}}, nil),
	)

	for i := 0; i < breaker.DefaultThreshold; i++ {
		env.svc.Trailers(ctx, tmdb.KindTV, int64(i))
	}
	assert.Empty(t, env.svc.Trailers(ctx, tmdb.KindTV, 7))

	snaps := env.svc.ResetTrailers()
	for _, s := range snaps {
		assert.Equal(t, breaker.Closed, s.State)
		assert.Zero(t, s.Failures)
	}

	got := env.svc.Trailers(ctx, tmdb.KindTV, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "back", got[0].Key)
}

func TestTrailers_CanceledCallerDoesNotTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env.provider.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, gomock.Any()).
		Return(nil, context.Canceled).Times(breaker.DefaultThreshold + 1)

	for i := 0; i <= breaker.DefaultThreshold; i++ {
		env.svc.Trailers(ctx, tmdb.KindMovie, int64(i))
	}
	assert.Equal(t, breaker.Closed, env.svc.TrailerBreakers()[0].State)
}
