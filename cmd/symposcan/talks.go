package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTalksCmd creates the talks command.
func NewTalksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "talks",
		Short: "Discover the talks listed on each stored symposium page",
		Long: `Talks fetches every stored symposium's page and stores one row per
talk listed on it. Symposia that already have talk rows are skipped,
so rerunning this command after an interruption resumes where it
stopped.

Run "symposcan symposia" first to populate the symposium list.

Examples:
  # Discover talk links for all stored symposia
  symposcan talks

  # Skip symposia by name while scanning
  symposcan talks --skip-name Poster`,
		Args: cobra.NoArgs,
		RunE: runTalksCmd,
	}

	addCrawlFlags(cmd)
	addSkipNameFlag(cmd)

	return cmd
}

// runTalksCmd executes the talks command.
func runTalksCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)
	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := openDB(cfg, false)
	if err != nil {
		return err
	}
	defer db.Close()

	s := newScraper(cfg, db, logger)
	if err := s.DiscoverTalkLinks(ctx); err != nil {
		return fmt.Errorf("talk link discovery failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Talk link discovery complete")
	return nil
}
