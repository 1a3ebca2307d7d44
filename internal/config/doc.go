// Package config holds symposcan's configuration: crawl tuning
// knobs with validated defaults, and the meeting catalog mapping
// edition names to root URLs.
//
// The catalog replaces hard-wired per-edition URL constants: built-in
// editions ship as data, and a .symposcan YAML file in the current or
// home directory can add editions (for new meetings or web-archive
// snapshots of dead ones) without code changes.
package config
