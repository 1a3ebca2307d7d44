// Package main provides the entry point for the symposcan CLI.
//
// symposcan scrapes conference proceedings sites in resumable stages:
// symposium discovery, talk-link discovery, and talk-detail retrieval,
// storing everything in a local SQLite database.
//
// Usage:
//
//	symposcan symposia <meeting>
//	symposcan talks
//	symposcan details
//	symposcan check
//
// See --help for all available options.
package main

// main is the entry point for symposcan.
func main() {
	Execute()
}
