package tmdb

import (
	"context"
	"net/url"
	"time"
)

// Revalidate intervals applied to cached provider responses.
const (
	DefaultTTL    = time.Hour
	NowPlayingTTL = 24 * time.Hour
	NoStore       = time.Duration(0)
)

// Cache stores raw response bodies keyed by request.
// A zero TTL is never passed to Set.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// cacheKey identifies a request without its credential.
func cacheKey(endpoint string, params url.Values) string {
	return "tmdb:" + endpoint + "?" + params.Encode()
}
