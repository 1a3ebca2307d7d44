package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoRoot is returned when a URL has no recognizable scheme://host
// root. It always signals a fundamentally malformed input URL and is
// never sentineled by callers.
var ErrNoRoot = errors.New("url has no scheme://host root")

// urlRootPattern matches the scheme and host of an absolute HTTP(S)
// URL: everything up to, but not including, the first path separator
// after the host.
var urlRootPattern = regexp.MustCompile(`^(https?://[^/]+)`)

// URLRoot returns the scheme+host prefix of an absolute URL, used to
// make the site's root-relative hrefs absolute. Relative, scheme-less,
// or otherwise malformed input fails with ErrNoRoot.
//
// Design decision: We pattern-match instead of using net/url because
// net/url happily parses relative references and opaque URIs; the
// crawl must reject anything that is not literally scheme://host/...
// before building absolute URLs from it.
func URLRoot(rawURL string) (string, error) {
	m := urlRootPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrNoRoot, rawURL)
	}
	return m[1], nil
}
