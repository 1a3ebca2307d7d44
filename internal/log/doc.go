// Package log provides the slog handler used for crawl progress
// output.
//
// Symposium and talk titles routinely run past 200 characters; the
// TruncateHandler wraps any slog.Handler and clips long string
// attribute values to a display width so one progress line stays one
// terminal line.
package log
