// Package database provides SQLite-based storage for symposcan.
//
// This package implements the ProceedingsDB, which stores the three
// append-only collections of the crawl:
//   - symposium_links: symposia discovered under meeting roots
//   - talk_links: talks known to exist under a symposium
//   - talks: fully detailed talk records (the default table)
//
// Design decision: We use SQLite (via modernc.org/sqlite) because the
// store must be a single caller-supplied file with no external
// service, and the CGO-free driver keeps cross-compilation easy. The
// crawl is a single sequential writer, so one connection suffices.
//
// The resume checks the orchestrator depends on are exposed as
// explicit existence queries (HasTalkLinks, HasTalkRecord) rather
// than a generic predicate-search API, keeping orchestration code
// free of SQL.
package database
