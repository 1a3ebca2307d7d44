package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <meeting>",
		Short: "Scrape a whole meeting in one non-resumable pass",
		Long: `Scrape runs symposium discovery, talk discovery, and detail retrieval
in a single pass, writing detailed records directly. There is no
resumption: a failure partway through means restarting the meeting
from scratch. Prefer the staged commands (symposia/talks/details) for
large meetings.

Per-talk detail failures are recorded with "N/A" as in the staged
flow; only discovery failures abort the run.

Examples:
  # One-shot scrape of a cataloged edition
  symposcan scrape mst18`,
		Args: cobra.ExactArgs(1),
		RunE: runScrapeCmd,
	}

	addCrawlFlags(cmd)

	return cmd
}

// runScrapeCmd executes the scrape command.
func runScrapeCmd(cmd *cobra.Command, args []string) error {
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
	if err := s.ScrapeMeeting(ctx, meetingURL); err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scrape complete (database: %s)\n", db.Path())
	return nil
}
