package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrioritizeTeasers(t *testing.T) {
	videos := []Trailer{
		{Key: "A", Type: "Trailer", Name: "Official Trailer"},
		{Key: "B", Type: "Teaser", Name: "First Look"},
		{Key: "C", Type: "Clip", Name: "Scene"},
		{Key: "D", Type: "Trailer", Name: "Final TEASER cut"},
	}

	got := PrioritizeTeasers(videos)

	keys := make([]string, len(got))
	for i, v := range got {
		keys[i] = v.Key
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, keys)
}

func TestPrioritizeTeasers_Empty(t *testing.T) {
	assert.Empty(t, PrioritizeTeasers(nil))
}

func TestClient_MovieVideos_YouTubeOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/603/videos", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":603,"results":[
			{"id":"1","key":"yt1","name":"Trailer","site":"YouTube","type":"Trailer"},
			{"id":"2","key":"vm1","name":"Trailer","site":"Vimeo","type":"Trailer"},
			{"id":"3","key":"yt2","name":"Teaser","site":"YouTube","type":"Teaser"}
		]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	videos, err := client.MovieVideos(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "yt1", videos[0].Key)
	assert.Equal(t, "yt2", videos[1].Key)
}

func TestClient_TVVideos_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.Videos(context.Background(), KindTV, 1)
	assert.ErrorIs(t, err, ErrNoResults)
}
