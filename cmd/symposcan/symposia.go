package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSymposiaCmd creates the symposia command.
func NewSymposiaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symposia <meeting>",
		Short: "Discover the symposia listed on a meeting's root page",
		Long: `Symposia fetches a meeting's root page and stores one row per
symposium listed on it. The meeting argument is either a catalog
edition name (e.g. "mst21") or a full meeting root URL.

This stage has no duplicate check: rerunning it appends the same
symposia again. Run it once per meeting, then move on to "talks".

Examples:
  # Discover symposia for a cataloged edition
  symposcan symposia mst21

  # Discover symposia for an arbitrary meeting URL
  symposcan symposia "http://www.programmaster.org/PM/PM.nsf/Home?OpenForm&ParentUNID=..."

  # Exclude plenary sessions
  symposcan symposia mst21 --skip-name Plenary`,
		Args: cobra.ExactArgs(1),
		RunE: runSymposiaCmd,
	}

	addCrawlFlags(cmd)
	addSkipNameFlag(cmd)

	return cmd
}

// runSymposiaCmd executes the symposia command.
func runSymposiaCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	meetingURL, err := cfg.Catalog.Resolve(args[0])
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)
	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := openDB(cfg, true)
	if err != nil {
		return err
	}
	defer db.Close()

	s := newScraper(cfg, db, logger)
	if err := s.DiscoverSymposia(ctx, meetingURL); err != nil {
		return fmt.Errorf("symposium discovery failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Symposium discovery complete (database: %s)\n", db.Path())
	return nil
}
