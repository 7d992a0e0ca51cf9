package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TrendingMovies returns this week's trending movies.
func (c *Client) TrendingMovies(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "trending/movie/week", nil, page, KindMovie, DefaultTTL)
}

// TopRatedMovies returns the highest rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "movie/top_rated", nil, page, KindMovie, DefaultTTL)
}

// PopularMovies returns the most popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "movie/popular", nil, page, KindMovie, DefaultTTL)
}

// UpcomingMovies returns movies about to be released.
func (c *Client) UpcomingMovies(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "movie/upcoming", nil, page, KindMovie, DefaultTTL)
}

// NowPlayingMovies returns movies currently in theatres. Refreshed daily.
func (c *Client) NowPlayingMovies(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "movie/now_playing", nil, page, KindMovie, NowPlayingTTL)
}

// TrendingTV returns this week's trending series.
func (c *Client) TrendingTV(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "trending/tv/week", nil, page, KindTV, DefaultTTL)
}

// TopRatedTV returns the highest rated series.
func (c *Client) TopRatedTV(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "tv/top_rated", nil, page, KindTV, DefaultTTL)
}

// PopularTV returns the most popular series.
func (c *Client) PopularTV(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "tv/popular", nil, page, KindTV, DefaultTTL)
}

// OnTheAirTV returns series with an episode airing in the next seven days.
func (c *Client) OnTheAirTV(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "tv/on_the_air", nil, page, KindTV, DefaultTTL)
}

// AiringTodayTV returns series with an episode airing today.
func (c *Client) AiringTodayTV(ctx context.Context, page int) ([]MediaRecord, error) {
	return c.list(ctx, "tv/airing_today", nil, page, KindTV, DefaultTTL)
}

// MoviesByGenre discovers movies tagged with genreID.
func (c *Client) MoviesByGenre(ctx context.Context, genreID, page int) ([]MediaRecord, error) {
	params := url.Values{"with_genres": {strconv.Itoa(genreID)}}
	return c.list(ctx, "discover/movie", params, page, KindMovie, DefaultTTL)
}

// TVByGenre discovers series tagged with genreID.
func (c *Client) TVByGenre(ctx context.Context, genreID, page int) ([]MediaRecord, error) {
	params := url.Values{"with_genres": {strconv.Itoa(genreID)}}
	return c.list(ctx, "discover/tv", params, page, KindTV, DefaultTTL)
}

// DiscoverTV runs a series discovery query. The page is read from params.
func (c *Client) DiscoverTV(ctx context.Context, params url.Values) ([]MediaRecord, error) {
	return c.discover(ctx, "discover/tv", params, KindTV)
}

func (c *Client) discover(ctx context.Context, endpoint string, params url.Values, kind Kind) ([]MediaRecord, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	page, _ := strconv.Atoi(q.Get("page"))
	return c.list(ctx, endpoint, q, page, kind, DefaultTTL)
}

// SimilarMovies returns movies similar to the given one.
func (c *Client) SimilarMovies(ctx context.Context, id int64, page int) ([]MediaRecord, error) {
	return c.list(ctx, fmt.Sprintf("movie/%d/similar", id), nil, page, KindMovie, DefaultTTL)
}

// SimilarTV returns series similar to the given one.
func (c *Client) SimilarTV(ctx context.Context, id int64, page int) ([]MediaRecord, error) {
	return c.list(ctx, fmt.Sprintf("tv/%d/similar", id), nil, page, KindTV, DefaultTTL)
}
