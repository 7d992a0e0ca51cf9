package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new marquee API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status     int
	Code       string
	Message    string
	Suggestion string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseAPIError(resp.StatusCode, body)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status, Message: strings.TrimSpace(string(body))}
	var payload struct {
		Error      string `json:"error"`
		Code       string `json:"code"`
		Suggestion string `json:"suggestion"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Code = payload.Code
		apiErr.Suggestion = payload.Suggestion
	}
	return apiErr
}

// API response types (mirror server types)

type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"posterPath"`
	Year        *int    `json:"year,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	MediaType   string  `json:"mediaType"`
}

type ItemsResponse struct {
	Items []Item `json:"items"`
}

// Record is a raw provider list entry; movies fill Title and ReleaseDate,
// shows fill Name and FirstAirDate.
type Record struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

func (r Record) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

func (r Record) Date() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

type ChartEntry struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	AliasOf string `json:"alias_of,omitempty"`
}

type ChartSection struct {
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Charts   []ChartEntry `json:"charts"`
}

type GenreEntry struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
}

type Trailer struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type TrailersResponse struct {
	Results []Trailer `json:"results"`
}

type Breaker struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	Failures int    `json:"failures"`
}

type BreakersResponse struct {
	Breakers []Breaker `json:"breakers"`
}

type Episode struct {
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
}

type EpisodesResponse struct {
	Episodes []Episode `json:"episodes"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type TitleResponse struct {
	Type    string `json:"type"`
	Details struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Name         string  `json:"name"`
		Overview     string  `json:"overview"`
		ReleaseDate  string  `json:"release_date"`
		FirstAirDate string  `json:"first_air_date"`
		VoteAverage  float64 `json:"vote_average"`
	} `json:"details"`
	Cast     []CastMember `json:"cast"`
	Similar  []Item       `json:"similar"`
	Trailers []Trailer    `json:"trailers"`
}

type HomeSection struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Items []Item `json:"items"`
}

type HomeResponse struct {
	Featured []Item        `json:"featured"`
	Sections []HomeSection `json:"sections"`
}

type StatusResponse struct {
	Status   string    `json:"status"`
	Version  string    `json:"version"`
	Cache    string    `json:"cache"`
	Charts   int       `json:"charts"`
	Uptime   string    `json:"uptime"`
	Breakers []Breaker `json:"breakers"`
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// Chart fetches one page of a chart by name or slug.
func (c *Client) Chart(ctx context.Context, nameOrSlug string, page int) ([]Item, error) {
	q := pageQuery(page)
	q.Set("slug", nameOrSlug)
	var resp ItemsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/charts", q, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) Charts(ctx context.Context) ([]ChartSection, error) {
	var resp []ChartSection
	err := c.do(ctx, http.MethodGet, "/api/v1/charts/index", nil, &resp)
	return resp, err
}

func (c *Client) Search(ctx context.Context, query string, page int) ([]Item, error) {
	q := pageQuery(page)
	q.Set("q", query)
	var resp ItemsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) Data(ctx context.Context, typ, category string, page int) ([]Record, error) {
	q := pageQuery(page)
	q.Set("type", typ)
	q.Set("category", category)
	var resp []Record
	err := c.do(ctx, http.MethodGet, "/api/v1/data", q, &resp)
	return resp, err
}

func (c *Client) Genres(ctx context.Context, category string) ([]GenreEntry, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	var resp []GenreEntry
	err := c.do(ctx, http.MethodGet, "/api/v1/genres/index", q, &resp)
	return resp, err
}

// Genre lists titles for typ ("movies" or "shows") in a genre.
func (c *Client) Genre(ctx context.Context, typ string, genreID, page int) ([]Record, error) {
	q := pageQuery(page)
	q.Set("type", typ)
	q.Set("genreId", strconv.Itoa(genreID))
	var resp []Record
	err := c.do(ctx, http.MethodGet, "/api/v1/genres", q, &resp)
	return resp, err
}

func (c *Client) Trailers(ctx context.Context, kind string, id int64) ([]Trailer, error) {
	q := url.Values{}
	q.Set("type", kind)
	q.Set("id", strconv.FormatInt(id, 10))
	var resp TrailersResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/trailers", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) ResetTrailers(ctx context.Context) ([]Breaker, error) {
	var resp BreakersResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/trailers/reset", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Breakers, nil
}

func (c *Client) Title(ctx context.Context, kind string, id int64) (*TitleResponse, error) {
	var resp TitleResponse
	path := fmt.Sprintf("/api/v1/titles/%s/%d", url.PathEscape(kind), id)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Episodes(ctx context.Context, tvID int64, season int) ([]Episode, error) {
	q := url.Values{}
	q.Set("tvId", strconv.FormatInt(tvID, 10))
	q.Set("seasonNumber", strconv.Itoa(season))
	var resp EpisodesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/episodes", q, &resp); err != nil {
		return nil, err
	}
	return resp.Episodes, nil
}

func (c *Client) Home(ctx context.Context) (*HomeResponse, error) {
	var resp HomeResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/home", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// isNotFound reports whether err is a 404 from the server.
func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
