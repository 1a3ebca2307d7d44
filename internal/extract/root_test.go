package extract

import (
	"errors"
	"testing"
)

// TestURLRoot tests scheme+host extraction from absolute URLs.
func TestURLRoot(t *testing.T) {
	t.Parallel()

	t.Run("extracts scheme and host", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			in   string
			want string
		}{
			{"https://example.org/path?x=1", "https://example.org"},
			{"http://www.programmaster.org/PM/PM.nsf/Home?OpenForm", "http://www.programmaster.org"},
			{"https://web.archive.org/web/20200101000000/http://www.programmaster.org/PM", "https://web.archive.org"},
			{"http://host:8080/page", "http://host:8080"},
		}

		for _, tt := range tests {
			got, err := URLRoot(tt.in)
			if err != nil {
				t.Errorf("URLRoot(%q) returned error: %v", tt.in, err)
				continue
			}
			if got != tt.want {
				t.Errorf("URLRoot(%q) = %q, want %q", tt.in, got, tt.want)
			}
		}
	})

	t.Run("rejects input without a root", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{
			"not-a-url",
			"/PM/PM.nsf/Talk?OpenDocument",
			"ftp://example.org/file",
			"",
		} {
			_, err := URLRoot(in)
			if err == nil {
				t.Errorf("URLRoot(%q) expected error, got nil", in)
				continue
			}
			if !errors.Is(err, ErrNoRoot) {
				t.Errorf("URLRoot(%q) error = %v, want ErrNoRoot", in, err)
			}
		}
	})
}
