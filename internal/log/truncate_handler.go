package log

import (
	"context"
	"io"
	"log/slog"
)

// Ellipsis is appended to attribute values clipped by the handler.
const Ellipsis = " ..."

// TruncateHandler wraps an slog.Handler and clips long string
// attribute values to a display width before passing records on.
//
// Design decision: We use a handler wrapper rather than truncating at
// call sites because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of presentation concerns
type TruncateHandler struct {
	// handler is the underlying slog handler receiving clipped records.
	handler slog.Handler

	// width is the maximum rune count per string attribute value.
	width int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given
// handler. Widths below 1 disable clipping. If handler is nil, the
// default handler is wrapped.
func NewTruncateHandler(handler slog.Handler, width int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TruncateHandler{handler: handler, width: width}
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes added,
// clipped first.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(clipped), width: h.width}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), width: h.width}
}

// truncateAttr clips a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clipped[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	}

	if a.Value.Kind() == slog.KindString {
		if v := Truncate(a.Value.String(), h.width); v != a.Value.String() {
			return slog.String(a.Key, v)
		}
	}

	return a
}

// Truncate clips s to width runes, marking the cut with Ellipsis.
// Widths below 1 return s unchanged.
func Truncate(s string, width int) string {
	if width < 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + Ellipsis
}

// NewProgressLogger creates the slog.Logger used for crawl progress.
// Verbose enables the per-item debug lines; otherwise only warnings
// and errors pass. String attribute values are clipped to width runes.
func NewProgressLogger(w io.Writer, verbose bool, width int) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncateHandler(textHandler, width))
}
