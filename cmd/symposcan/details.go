package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDetailsCmd creates the details command.
func NewDetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Fetch each talk's detail page for authors and abstract",
		Long: `Details fetches the detail page of every stored talk link and stores
one fully detailed record per talk. Talks that already have a record
are skipped, so rerunning this command resumes where it stopped.

A talk whose page cannot be fetched or parsed is recorded with "N/A"
in place of authors and abstract; the pass continues. Use
"symposcan check" afterwards to list such records.

Run "symposcan talks" first to populate the talk link list.

Examples:
  # Retrieve details for all stored talk links
  symposcan details

  # Skip known-bad pages
  symposcan details --skip-url 4BFA23C1 --skip-name "Opening Remarks"`,
		Args: cobra.NoArgs,
		RunE: runDetailsCmd,
	}

	addCrawlFlags(cmd)
	addSkipNameFlag(cmd)
	addSkipURLFlag(cmd)

	return cmd
}

// runDetailsCmd executes the details command.
func runDetailsCmd(cmd *cobra.Command, _ []string) error {
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
	if err := s.RetrieveDetails(ctx); err != nil {
		return fmt.Errorf("detail retrieval failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Detail retrieval complete")
	return nil
}
