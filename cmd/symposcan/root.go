package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for symposcan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symposcan",
		Short: "Staged scraper for conference proceedings sites",
		Long: `symposcan scrapes a hierarchical conference proceedings site in three
resumable stages, each persisting to a local SQLite database:

  symposia  discover the symposia listed on a meeting's root page
  talks     discover the talks listed on each stored symposium page
  details   fetch each talk's detail page for authors and abstract

Each stage skips work already recorded, so an interrupted run resumes
where it stopped. The one-shot "scrape" command runs everything in a
single pass without resumption, and "check" flags stored records whose
detail text looks wrong.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose progress output")

	// Add subcommands
	cmd.AddCommand(NewSymposiaCmd())
	cmd.AddCommand(NewTalksCmd())
	cmd.AddCommand(NewDetailsCmd())
	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
