package config

import (
	"fmt"
	"sort"
	"strings"
)

// archiveURLFormat templates a web-archive snapshot URL for editions
// whose live pages are gone: archive host, snapshot timestamp, then
// the original URL.
const archiveURLFormat = "https://web.archive.org/web/%s/%s"

// Edition is one catalog entry: a meeting edition and its root URL.
type Edition struct {
	// URL is the meeting root URL as originally served.
	URL string `yaml:"url"`

	// ArchiveTimestamp, when set, addresses a web-archive snapshot of
	// URL instead of the live page (format: YYYYMMDDhhmmss).
	ArchiveTimestamp string `yaml:"archive_timestamp,omitempty"`
}

// RootURL returns the URL to crawl for this edition: the live URL, or
// the archive snapshot when a timestamp is set.
func (e Edition) RootURL() string {
	if e.ArchiveTimestamp != "" {
		return fmt.Sprintf(archiveURLFormat, e.ArchiveTimestamp, e.URL)
	}
	return e.URL
}

// Catalog maps edition names to meeting root URLs. It replaces the
// hard-wired per-edition URL constants of earlier tooling so that new
// editions or archive snapshots are configuration, not code.
type Catalog struct {
	// Editions maps an edition name (e.g. "mst21") to its entry.
	Editions map[string]Edition `yaml:"editions"`
}

// DefaultCatalog returns the built-in editions. The query-string URLs
// carry each meeting's ParentUNID, whose trailing characters also
// scope symposium anchors on the page (see internal/extract).
func DefaultCatalog() *Catalog {
	return &Catalog{
		Editions: map[string]Edition{
			"mst18": {URL: "http://www.programmaster.org/PM/PM.nsf/Home?OpenForm&ParentUNID=8B0BF2B4D6505BA8852580CF005B20F8"},
			"mst19": {URL: "http://www.programmaster.org/PM/PM.nsf/Home?OpenForm&ParentUNID=7E9C94165C3B857D852582340050B6D7"},
			"mst20": {URL: "http://www.programmaster.org/PM/PM.nsf/Home?OpenForm&ParentUNID=EB8595226BB57C208525831F00014E65"},
			"mst21": {URL: "http://www.programmaster.org/PM/PM.nsf/Home?OpenForm&ParentUNID=B6C7F14C3E2EE67A852584D3004B3D35"},
		},
	}
}

// Resolve turns a meeting argument into a root URL: a catalog edition
// name resolves through the catalog, and anything that is already an
// absolute HTTP(S) URL passes through untouched. Everything else is
// ErrUnknownEdition.
func (c *Catalog) Resolve(meeting string) (string, error) {
	if edition, ok := c.Editions[meeting]; ok {
		return edition.RootURL(), nil
	}
	if strings.HasPrefix(meeting, "http://") || strings.HasPrefix(meeting, "https://") {
		return meeting, nil
	}
	return "", fmt.Errorf("%w: %q (known editions: %s)", ErrUnknownEdition, meeting, strings.Join(c.Names(), ", "))
}

// Names returns the edition names in sorted order, for help and error
// output.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Editions))
	for name := range c.Editions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays the entries of other onto the catalog. File-provided
// editions win over built-ins of the same name.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	if c.Editions == nil {
		c.Editions = make(map[string]Edition)
	}
	for name, edition := range other.Editions {
		c.Editions[name] = edition
	}
}
