package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/symposcan/symposcan/internal/model"
)

// SimpleWriter outputs the consistency report as human-readable text.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// verbose enables full abstract text in the output instead of the
	// clipped preview.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with full abstract text.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the report in human-readable format.
func (w *SimpleWriter) Write(report *CheckReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	w.writeSuspects(&sb, report)
	w.writeSummary(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header.
func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    PROCEEDINGS CONSISTENCY REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

// writeSuspects writes one block per flagged record.
func (w *SimpleWriter) writeSuspects(sb *strings.Builder, report *CheckReport) {
	if report.Clean() {
		sb.WriteString("  No suspect records found\n\n")
		return
	}

	for _, s := range report.Suspects {
		sb.WriteString(fmt.Sprintf("  * %s\n", s.Record.TalkName))
		sb.WriteString(fmt.Sprintf("    Symposium: %s\n", s.Record.SymposiumName))
		sb.WriteString(fmt.Sprintf("    Reasons:   %s\n", strings.Join(s.Reasons, ", ")))
		sb.WriteString(fmt.Sprintf("    Authors:   %s\n", s.Record.Authors))

		abstract := s.Record.Abstract
		if !w.verbose {
			abstract = preview(abstract, model.MinAbstractLen)
		}
		sb.WriteString(fmt.Sprintf("    Abstract:  %s\n", abstract))
		sb.WriteString(fmt.Sprintf("    URL:       %s\n", s.Record.TalkURL))
		sb.WriteString("\n")
	}
}

// writeSummary writes the closing counts.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *CheckReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  RECORDS:    %d\n", report.Total))
	sb.WriteString(fmt.Sprintf("  SUSPECT:    %d\n", report.SuspectCount()))
	sb.WriteString(fmt.Sprintf("  SENTINELED: %d\n", report.SentinelCount))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// preview clips s to maxLen characters with an ellipsis marker.
func preview(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
