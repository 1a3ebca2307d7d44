// Package extract contains the pure markup-extraction functions:
// URL root resolution, symposium and talk anchor selection, and
// detail-cell extraction from talk pages.
//
// Everything in this package operates on already-fetched markup and
// performs no I/O, so the fragile, site-specific selection rules can
// be tested against fixture HTML without a network.
//
// Design decision: We use golang.org/x/net/html rather than regex
// because the proceedings site emits malformed table soup that a
// tolerant HTML5 parser handles correctly.
package extract
