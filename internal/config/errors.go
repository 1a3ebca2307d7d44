package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(), so callers can use
// errors.Is() for programmatic handling while still getting
// human-readable messages.
var (
	// ErrInvalidWidth is returned when the display width is not
	// positive. Progress lines are truncated to this width.
	ErrInvalidWidth = errors.New("invalid display width: must be positive")

	// ErrInvalidTimeout is returned when the per-attempt timeout is
	// not positive. A zero timeout would cause immediate failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidRetryAttempts is returned when the retry attempt
	// ceiling is not positive.
	ErrInvalidRetryAttempts = errors.New("invalid retry attempts: must be positive")

	// ErrInvalidRetryWindow is returned when the retry window is
	// negative. Zero disables the window limit.
	ErrInvalidRetryWindow = errors.New("invalid retry window: must be non-negative")

	// ErrInvalidCrawlDelay is returned when the inter-request delay is
	// negative. Use 0 for no delay.
	ErrInvalidCrawlDelay = errors.New("invalid crawl delay: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is
	// negative. Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrUnknownEdition is returned when a meeting argument names
	// neither a catalog edition nor an absolute URL.
	ErrUnknownEdition = errors.New("unknown edition: not in the catalog and not an absolute URL")
)
