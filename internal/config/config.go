package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/symposcan/symposcan/internal/fetch"
)

// Default configuration values. The fetch-level defaults live in the
// fetch package next to the code that applies them; values here cover
// the orchestration layer.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "symposcan"

	// DefaultWidth is the display width progress lines are truncated
	// to. Symposium and talk titles run long; 40 characters keeps one
	// item per terminal line.
	DefaultWidth = 40

	// DefaultCrawlDelay is the politeness delay between page
	// requests. The site rate-limits aggressively; one second per
	// request has proven safe across full-meeting scrapes.
	DefaultCrawlDelay = 1 * time.Second
)

// Config holds all configuration options for symposcan. Populated
// from CLI flags and passed through the application by value rather
// than global state.
type Config struct {
	// DBDir is the directory holding the SQLite database file.
	// Defaults to the XDG data directory.
	DBDir string

	// Verbose enables per-symposium/per-talk progress output at
	// slog.LevelDebug. When false, only warnings and errors are
	// logged.
	Verbose bool

	// Width is the display width progress values are truncated to.
	Width int

	// Timeout bounds a single fetch attempt end to end.
	Timeout time.Duration

	// RetryAttempts is the total attempt ceiling per fetch.
	RetryAttempts int

	// RetryWindow bounds total time spent on one fetch including
	// retries. Zero disables the window.
	RetryWindow time.Duration

	// RetryInterval is the delay between fetch attempts.
	RetryInterval time.Duration

	// CrawlDelay is the politeness delay between page requests.
	CrawlDelay time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// MaxBodySize limits the response body read per page. Zero means
	// the fetch default.
	MaxBodySize int64

	// SkipNames are substrings matched against symposium and talk
	// names; a match excludes the item from the running phase.
	SkipNames []string

	// SkipURLs are substrings matched against talk URLs during detail
	// retrieval; a match excludes the talk.
	SkipURLs []string

	// ConfigFilePath is an explicit catalog file path. Empty means
	// search for .symposcan in the current and home directories.
	ConfigFilePath string

	// Catalog maps edition names to meeting root URLs.
	Catalog *Catalog
}

// NewConfig creates a Config with default values.
//
// Design decision: A constructor instead of zero values because most
// defaults are non-zero, and the function doubles as documentation of
// what they are.
func NewConfig() *Config {
	return &Config{
		DBDir:         XDGDataDir(),
		Width:         DefaultWidth,
		Timeout:       fetch.DefaultAttemptTimeout,
		RetryAttempts: fetch.DefaultMaxAttempts,
		RetryWindow:   fetch.DefaultWindow,
		RetryInterval: fetch.DefaultInterval,
		CrawlDelay:    DefaultCrawlDelay,
		UserAgent:     fetch.DefaultUserAgent,
		MaxBodySize:   fetch.DefaultMaxBodySize,
		Catalog:       DefaultCatalog(),
	}
}

// XDGDataDir returns the XDG data directory for symposcan.
// On Linux: ~/.local/share/symposcan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid, returning the first
// problem found. Called once after CLI parsing, before any crawling.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return ErrInvalidWidth
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.RetryAttempts <= 0 {
		return ErrInvalidRetryAttempts
	}
	if c.RetryWindow < 0 {
		return ErrInvalidRetryWindow
	}
	if c.CrawlDelay < 0 {
		return ErrInvalidCrawlDelay
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}

// Policy builds the fetch retry policy described by the config.
func (c *Config) Policy() fetch.Policy {
	return fetch.Policy{
		MaxAttempts: c.RetryAttempts,
		Window:      c.RetryWindow,
		Interval:    c.RetryInterval,
		RetryIf:     fetch.DefaultRetryIf,
	}
}
