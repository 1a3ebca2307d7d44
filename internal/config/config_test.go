package config

import (
	"errors"
	"testing"
	"time"
)

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		if err := NewConfig().Validate(); err != nil {
			t.Errorf("default config should validate, got %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidWidth},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"zero retry attempts", func(c *Config) { c.RetryAttempts = 0 }, ErrInvalidRetryAttempts},
		{"negative retry window", func(c *Config) { c.RetryWindow = -time.Second }, ErrInvalidRetryWindow},
		{"negative crawl delay", func(c *Config) { c.CrawlDelay = -time.Second }, ErrInvalidCrawlDelay},
		{"negative max body size", func(c *Config) { c.MaxBodySize = -1 }, ErrInvalidMaxBodySize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestPolicy tests that the config maps onto a fetch policy.
func TestPolicy(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.RetryAttempts = 5
	cfg.RetryWindow = 90 * time.Second
	cfg.RetryInterval = 3 * time.Second

	p := cfg.Policy()
	if p.MaxAttempts != 5 || p.Window != 90*time.Second || p.Interval != 3*time.Second {
		t.Errorf("policy does not reflect config: %+v", p)
	}
	if p.RetryIf == nil {
		t.Error("policy must carry a retry predicate")
	}
}
