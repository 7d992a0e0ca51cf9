package tmdb

import (
	"context"
	"fmt"
)

// MovieDetails fetches a movie by id.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	var m MovieDetails
	if err := c.getJSON(ctx, fmt.Sprintf("movie/%d", id), nil, DefaultTTL, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// TVDetails fetches a series by id.
func (c *Client) TVDetails(ctx context.Context, id int64) (*TVDetails, error) {
	var t TVDetails
	if err := c.getJSON(ctx, fmt.Sprintf("tv/%d", id), nil, DefaultTTL, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

type creditsResponse struct {
	Cast []CastMember `json:"cast"`
}

// Credits returns the cast of a title. A missing cast list is empty, not an error.
func (c *Client) Credits(ctx context.Context, kind Kind, id int64) ([]CastMember, error) {
	var resp creditsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d/credits", kind, id), nil, DefaultTTL, &resp); err != nil {
		return nil, err
	}
	if resp.Cast == nil {
		return []CastMember{}, nil
	}
	return resp.Cast, nil
}

// Collection fetches a movie collection and tags its parts as movies.
func (c *Client) Collection(ctx context.Context, id int64) (*Collection, error) {
	var col Collection
	if err := c.getJSON(ctx, fmt.Sprintf("collection/%d", id), nil, DefaultTTL, &col); err != nil {
		return nil, err
	}
	for i := range col.Parts {
		col.Parts[i].Kind = KindMovie
	}
	return &col, nil
}

// Season fetches one season of a series with its episodes.
func (c *Client) Season(ctx context.Context, tvID int64, seasonNumber int) (*Season, error) {
	var s Season
	if err := c.getJSON(ctx, fmt.Sprintf("tv/%d/season/%d", tvID, seasonNumber), nil, DefaultTTL, &s); err != nil {
		return nil, err
	}
	if s.Episodes == nil {
		s.Episodes = []Episode{}
	}
	return &s, nil
}
