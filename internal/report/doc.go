// Package report builds and renders the consistency report over
// stored talk records.
//
// The check flags records whose extracted text is implausibly short or
// carries the "N/A" sentinel, meaning the detail page was unreachable
// or its layout defeated the extractor. Flagged records are reported
// for manual review; nothing is ever corrected or refetched.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably:
//   - SimpleWriter: human-readable text for terminal display
//   - MarkdownWriter: Markdown for documentation and sharing
//   - JSONWriter: structured output for tool integration
package report
