package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/symposcan/symposcan/internal/config"
	"github.com/symposcan/symposcan/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Flag stored records whose detail text looks wrong",
		Long: `Check scans every stored talk record and flags the ones whose detail
text is implausible: "N/A" sentinels from failed retrievals, abstracts
shorter than 100 characters, or author lists shorter than 10. Flagged
records usually mean the detail page was unreachable or rendered from
a layout the extractor cannot read.

Check never modifies the database; review flagged records manually.

Examples:
  # Text report on stdout
  symposcan check

  # Markdown report to a file
  symposcan check --markdown --output report.md

  # JSON for further processing
  symposcan check --json`,
		Args: cobra.NoArgs,
		RunE: runCheckCmd,
	}

	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory holding the SQLite database file")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	var err error
	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownReport, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonReport && markdownReport {
		return errors.New("--json and --markdown are mutually exclusive")
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	db, err := openDB(cfg, false)
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := db.ListTalkRecords(context.Background())
	if err != nil {
		return err
	}

	checkReport := report.NewCheckReport(recs)

	output, closeOutput, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(output, jsonReport, markdownReport)
	if _, err := writer.Write(checkReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// newReportWriter picks the report renderer for the requested format.
func newReportWriter(output io.Writer, jsonReport, markdownReport bool) report.Writer {
	switch {
	case jsonReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case markdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}

// openOutput resolves the report destination: the given file path, or
// the command's stdout. The returned closer is a no-op for stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
