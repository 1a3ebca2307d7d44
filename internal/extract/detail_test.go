package extract

import (
	"fmt"
	"strings"
	"testing"
)

// detailPage builds a talk page in the site's fixed layout: a row of
// linked navigation cells (which the extractor must ignore) followed
// by plain cells with authors at filtered index 10 and abstract at 14.
func detailPage(authors, abstract string) string {
	var sb strings.Builder
	sb.WriteString("<html><body><table>")
	// Linked navigation cells; excluded from indexing.
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, `<tr><td><a href="/PM/PM.nsf/Nav%d?OpenForm">nav</a></td></tr>`, i)
	}
	for i := 0; i < 16; i++ {
		switch i {
		case 10:
			fmt.Fprintf(&sb, "<tr><td>%s</td></tr>", authors)
		case 14:
			fmt.Fprintf(&sb, "<tr><td>%s</td></tr>", abstract)
		default:
			fmt.Fprintf(&sb, "<tr><td>filler %d</td></tr>", i)
		}
	}
	sb.WriteString("</table></body></html>")
	return sb.String()
}

// TestDetail tests fixed-position cell extraction from talk pages.
func TestDetail(t *testing.T) {
	t.Parallel()

	t.Run("extracts authors and abstract cells", func(t *testing.T) {
		t.Parallel()

		wantAuthors := "A. Smith, B. Jones; Example University"
		wantAbstract := "We study microstructural evolution under cyclic load."

		authors, abstract, err := Detail(detailPage(wantAuthors, wantAbstract))
		if err != nil {
			t.Fatalf("failed to extract detail: %v", err)
		}
		if authors != wantAuthors {
			t.Errorf("expected authors %q, got %q", wantAuthors, authors)
		}
		if abstract != wantAbstract {
			t.Errorf("expected abstract %q, got %q", wantAbstract, abstract)
		}
	})

	t.Run("extra linked cells do not shift the indices", func(t *testing.T) {
		t.Parallel()

		// Linked cells are filtered out before indexing, so a page
		// variant with more navigation links must extract identically.
		page := strings.Replace(detailPage("authors here ok", "abstract text"),
			"<table>",
			`<table><tr><td><a href="/PM/PM.nsf/Extra?OpenForm">extra nav</a></td></tr>`, 1)
		authors, _, err := Detail(page)
		if err != nil {
			t.Fatalf("failed to extract detail: %v", err)
		}
		if authors != "authors here ok" {
			t.Errorf("expected authors 'authors here ok', got %q", authors)
		}
	})

	t.Run("page with too few cells fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := Detail(`<html><body><table><tr><td>only</td><td>three</td><td>cells</td></tr></table></body></html>`)
		if err == nil {
			t.Fatal("expected error for page with too few cells")
		}
		if !strings.Contains(err.Error(), "detail layout") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
