package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized: invalid or missing API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
	ErrMalformed    = errors.New("malformed response body")
	ErrNoResults    = errors.New("response has no results array")
)

// StatusError reports a non-2xx response that has no dedicated sentinel.
type StatusError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API error: %s (%s)", e.Status, e.Endpoint)
}

// checkResponse classifies a response status.
func checkResponse(resp *http.Response, endpoint string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Endpoint: endpoint}
	}
}
