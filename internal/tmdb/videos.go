package tmdb

import (
	"context"
	"fmt"
	"strings"
)

// MovieVideos returns the YouTube videos attached to a movie.
func (c *Client) MovieVideos(ctx context.Context, id int64) ([]Trailer, error) {
	return c.videos(ctx, fmt.Sprintf("movie/%d/videos", id))
}

// TVVideos returns the YouTube videos attached to a series.
func (c *Client) TVVideos(ctx context.Context, id int64) ([]Trailer, error) {
	return c.videos(ctx, fmt.Sprintf("tv/%d/videos", id))
}

// Videos dispatches on kind.
func (c *Client) Videos(ctx context.Context, kind Kind, id int64) ([]Trailer, error) {
	if kind == KindMovie {
		return c.MovieVideos(ctx, id)
	}
	return c.TVVideos(ctx, id)
}

func (c *Client) videos(ctx context.Context, endpoint string) ([]Trailer, error) {
	body, err := c.get(ctx, endpoint, nil, DefaultTTL)
	if err != nil {
		return nil, err
	}
	all, err := decodeResults[Trailer](endpoint, body)
	if err != nil {
		return nil, err
	}
	videos := make([]Trailer, 0, len(all))
	for _, v := range all {
		if v.Site == "YouTube" {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// IsTeaser reports whether a video is a teaser by type or by name.
func IsTeaser(v Trailer) bool {
	return v.Type == "Teaser" || strings.Contains(strings.ToLower(v.Name), "teaser")
}

// PrioritizeTeasers moves teasers ahead of other videos, keeping the relative
// order within each group.
func PrioritizeTeasers(videos []Trailer) []Trailer {
	out := make([]Trailer, 0, len(videos))
	for _, v := range videos {
		if IsTeaser(v) {
			out = append(out, v)
		}
	}
	for _, v := range videos {
		if !IsTeaser(v) {
			out = append(out, v)
		}
	}
	return out
}
