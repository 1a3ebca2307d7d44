package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the consistency report in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the report in Markdown format.
func (w *MarkdownWriter) Write(report *CheckReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeAlert(md, report)
	w.writeSuspectsTable(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *CheckReport) {
	md.H1("Proceedings Consistency Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Records examined", strconv.Itoa(report.Total)},
			{"Suspect records", strconv.Itoa(report.SuspectCount())},
			{"Sentineled records", strconv.Itoa(report.SentinelCount)},
		},
	})
	md.PlainText("")
}

// writeAlert writes an alert matching the check outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *CheckReport) {
	switch {
	case report.SentinelCount > 0:
		md.Warningf(
			"%d record(s) were stored without detail text and need manual review.",
			report.SentinelCount,
		)
	case report.SuspectCount() > 0:
		md.Importantf(
			"%d record(s) have implausibly short detail text.",
			report.SuspectCount(),
		)
	default:
		md.Tip("All records look consistent.")
	}
	md.PlainText("")
}

// writeSuspectsTable writes one row per flagged record.
func (w *MarkdownWriter) writeSuspectsTable(md *markdown.Markdown, report *CheckReport) {
	md.H2("Suspect Records")
	md.PlainText("")

	if report.Clean() {
		md.PlainText("No suspect records found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Suspects))
	for i, s := range report.Suspects {
		rows[i] = []string{
			s.Record.TalkName,
			s.Record.SymposiumName,
			strings.Join(s.Reasons, ", "),
			truncateString(s.Record.Authors, 50),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Talk", "Symposium", "Reasons", "Authors"},
		Rows:   rows,
	})
	md.PlainText("")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
