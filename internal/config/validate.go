// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

const warningMarker = ": warning: "

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validCacheDrivers = map[string]bool{
	"memory": true, "sqlite": true, "redis": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of messages (empty if valid). Messages containing
// ": warning: " are advisory.
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[strings.ToLower(c.Server.LogLevel)] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("server.rate_limit: must not be negative, got %g", c.Server.RateLimit))
	}
	if c.Server.RateBurst < 0 {
		errs = append(errs, fmt.Sprintf("server.rate_burst: must not be negative, got %d", c.Server.RateBurst))
	}

	// Provider validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key"+warningMarker+"not set; provider requests will be rejected")
	}
	if c.TMDB.BaseURL != "" {
		u, err := url.Parse(c.TMDB.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("tmdb.base_url: must be an http(s) URL, got %q", c.TMDB.BaseURL))
		}
	}
	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			errs = append(errs, fmt.Sprintf("tmdb.language: invalid language tag %q", c.TMDB.Language))
		}
	}
	if c.TMDB.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.requests_per_second: must not be negative, got %g", c.TMDB.RequestsPerSecond))
	}
	if c.TMDB.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.timeout: must not be negative, got %s", c.TMDB.Timeout))
	}

	// Cache validation
	if !validCacheDrivers[c.Cache.Driver] {
		errs = append(errs, fmt.Sprintf("cache.driver: must be one of memory, sqlite, redis; got %q", c.Cache.Driver))
	}
	if c.Cache.Driver == "sqlite" && c.Cache.Path == "" {
		errs = append(errs, "cache.path: required when driver is sqlite")
	}
	if c.Cache.Driver == "redis" && c.Cache.RedisAddr == "" {
		errs = append(errs, "cache.redis_addr: required when driver is redis")
	}
	if c.Cache.PruneInterval < 0 {
		errs = append(errs, fmt.Sprintf("cache.prune_interval: must not be negative, got %s", c.Cache.PruneInterval))
	}

	if c.Trailers.FailureThreshold < 0 {
		errs = append(errs, fmt.Sprintf("trailers.failure_threshold: must be at least 1, got %d", c.Trailers.FailureThreshold))
	}
	if c.Home.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("home.concurrency: must be at least 1, got %d", c.Home.Concurrency))
	}

	return errs
}

// Warnings returns the advisory messages from Validate.
func (c *Config) Warnings() []string {
	_, warns := splitWarnings(c.Validate())
	return warns
}

func splitWarnings(msgs []string) (errs, warns []string) {
	for _, m := range msgs {
		if strings.Contains(m, warningMarker) {
			warns = append(warns, m)
		} else {
			errs = append(errs, m)
		}
	}
	return errs, warns
}
