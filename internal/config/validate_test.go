// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := Defaults()
	cfg.TMDB.APIKey = "test-key"
	return cfg
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_ZeroConfigOnlyWarns(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, errs, cfg.Warnings())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 99999 }, "server.port"},
		{"log level", func(c *Config) { c.Server.LogLevel = "verbose" }, "server.log_level"},
		{"rate limit", func(c *Config) { c.Server.RateLimit = -1 }, "server.rate_limit"},
		{"rate burst", func(c *Config) { c.Server.RateBurst = -1 }, "server.rate_burst"},
		{"base url scheme", func(c *Config) { c.TMDB.BaseURL = "ftp://example.com" }, "tmdb.base_url"},
		{"base url host", func(c *Config) { c.TMDB.BaseURL = "https://" }, "tmdb.base_url"},
		{"language", func(c *Config) { c.TMDB.Language = "not a tag!" }, "tmdb.language"},
		{"provider rate", func(c *Config) { c.TMDB.RequestsPerSecond = -2 }, "tmdb.requests_per_second"},
		{"timeout", func(c *Config) { c.TMDB.Timeout = -1 }, "tmdb.timeout"},
		{"driver", func(c *Config) { c.Cache.Driver = "memcached" }, "cache.driver"},
		{"sqlite path", func(c *Config) { c.Cache.Driver = "sqlite"; c.Cache.Path = "" }, "cache.path"},
		{"redis addr", func(c *Config) { c.Cache.Driver = "redis" }, "cache.redis_addr"},
		{"prune", func(c *Config) { c.Cache.PruneInterval = -1 }, "cache.prune_interval"},
		{"threshold", func(c *Config) { c.Trailers.FailureThreshold = -1 }, "trailers.failure_threshold"},
		{"concurrency", func(c *Config) { c.Home.Concurrency = -1 }, "home.concurrency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			assert.True(t, containsError(errs, tt.want), "expected %s error, got %v", tt.want, errs)
			assert.Empty(t, cfg.Warnings())
		})
	}
}

func TestValidate_LanguageTags(t *testing.T) {
	for _, tag := range []string{"en-US", "ja", "ko-KR", "pt-BR"} {
		cfg := validConfig()
		cfg.TMDB.Language = tag
		assert.Empty(t, cfg.Validate(), tag)
	}
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "DEBUG"
	assert.Empty(t, cfg.Validate())
}

func TestSplitWarnings(t *testing.T) {
	errs, warns := splitWarnings([]string{
		"server.port: bad",
		"tmdb.api_key: warning: not set",
	})
	assert.Equal(t, []string{"server.port: bad"}, errs)
	assert.Equal(t, []string{"tmdb.api_key: warning: not set"}, warns)
}
