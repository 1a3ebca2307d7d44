package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newProceedingsServer serves a minimal meeting with two symposia and
// three talks, one of which renders from a layout the detail extractor
// cannot read.
func newProceedingsServer(t *testing.T) *httptest.Server {
	t.Helper()

	longAbstract := strings.Repeat("Microstructural evolution under cyclic load is studied. ", 4)

	detail := func(authors, abstract string) string {
		var sb strings.Builder
		sb.WriteString("<html><body><table>")
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

	mux := http.NewServeMux()
	mux.HandleFunc("/PM/PM.nsf/Home", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>`+
			`<a href="/PM/PM.nsf/SessionsByUNID/CER1?OpenDocument&ParentUNID=A1B25B20F8AB">Ceramics</a>`+
			`<a href="/PM/PM.nsf/SessionsByUNID/ALY2?OpenDocument&ParentUNID=A1B25B20F8AB">Lightweight Alloys</a>`+
			`<a href="/PM/PM.nsf/SessionsByUNID/XYZ9?OpenDocument&ParentUNID=FFFFFFFF">Other Meeting</a>`+
			`</body></html>`)
	})
	mux.HandleFunc("/PM/PM.nsf/SessionsByUNID/CER1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><table>`+
			`<tr><td><a href="/PM/PM.nsf/TalksByUNID/T001?OpenDocument">Sintering of Oxide Ceramics</a></td></tr>`+
			`<tr><td><a href="/PM/PM.nsf/TalksByUNID/T002?OpenDocument">Grain Boundary Engineering</a></td></tr>`+
			`</table></body></html>`)
	})
	mux.HandleFunc("/PM/PM.nsf/SessionsByUNID/ALY2", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><table>`+
			`<tr><td><a href="/PM/PM.nsf/TalksByUNID/T003?OpenDocument">Magnesium Alloy Design</a></td></tr>`+
			`</table></body></html>`)
	})
	mux.HandleFunc("/PM/PM.nsf/TalksByUNID/T001", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, detail("A. Smith, B. Jones; Example University", longAbstract))
	})
	mux.HandleFunc("/PM/PM.nsf/TalksByUNID/T002", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, detail("C. Tanaka; Example Institute", longAbstract))
	})
	mux.HandleFunc("/PM/PM.nsf/TalksByUNID/T003", func(w http.ResponseWriter, _ *http.Request) {
		// Wrong layout; detail extraction must fail and sentinel.
		fmt.Fprint(w, `<html><body><table><tr><td>broken</td></tr></table></body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCommand executes one CLI invocation against a fresh command tree.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestStagedScrape runs the full staged flow against a local server:
// symposia, talks, details, then check.
func TestStagedScrape(t *testing.T) {
	t.Parallel()

	srv := newProceedingsServer(t)
	meetingURL := srv.URL + "/PM/PM.nsf/Home?OpenForm&ParentUNID=A1B25B20F8AB"
	dbDir := t.TempDir()

	if _, err := runCommand(t, "symposia", meetingURL, "--db-dir", dbDir, "--delay", "0"); err != nil {
		t.Fatalf("symposia command failed: %v", err)
	}
	if _, err := runCommand(t, "talks", "--db-dir", dbDir, "--delay", "0"); err != nil {
		t.Fatalf("talks command failed: %v", err)
	}
	if _, err := runCommand(t, "details", "--db-dir", dbDir, "--delay", "0"); err != nil {
		t.Fatalf("details command failed: %v", err)
	}

	out, err := runCommand(t, "check", "--db-dir", dbDir)
	if err != nil {
		t.Fatalf("check command failed: %v", err)
	}

	for _, want := range []string{
		"RECORDS:    3",
		"SUSPECT:    1",
		"SENTINELED: 1",
		"Magnesium Alloy Design",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected check output to contain %q, got:\n%s", want, out)
		}
	}
}

// TestStagedScrapeIsRerunSafe reruns the middle stages and verifies
// nothing is duplicated.
func TestStagedScrapeIsRerunSafe(t *testing.T) {
	t.Parallel()

	srv := newProceedingsServer(t)
	meetingURL := srv.URL + "/PM/PM.nsf/Home?OpenForm&ParentUNID=A1B25B20F8AB"
	dbDir := t.TempDir()

	if _, err := runCommand(t, "symposia", meetingURL, "--db-dir", dbDir, "--delay", "0"); err != nil {
		t.Fatalf("symposia command failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := runCommand(t, "talks", "--db-dir", dbDir, "--delay", "0"); err != nil {
			t.Fatalf("talks command failed: %v", err)
		}
		if _, err := runCommand(t, "details", "--db-dir", dbDir, "--delay", "0"); err != nil {
			t.Fatalf("details command failed: %v", err)
		}
	}

	out, err := runCommand(t, "check", "--db-dir", dbDir)
	if err != nil {
		t.Fatalf("check command failed: %v", err)
	}
	if !strings.Contains(out, "RECORDS:    3") {
		t.Errorf("expected 3 records after reruns, got:\n%s", out)
	}
}

// TestOneShotScrape runs the combined scrape command.
func TestOneShotScrape(t *testing.T) {
	t.Parallel()

	srv := newProceedingsServer(t)
	meetingURL := srv.URL + "/PM/PM.nsf/Home?OpenForm&ParentUNID=A1B25B20F8AB"
	dbDir := t.TempDir()

	if _, err := runCommand(t, "scrape", meetingURL, "--db-dir", dbDir, "--delay", "0"); err != nil {
		t.Fatalf("scrape command failed: %v", err)
	}

	out, err := runCommand(t, "check", "--db-dir", dbDir)
	if err != nil {
		t.Fatalf("check command failed: %v", err)
	}
	if !strings.Contains(out, "RECORDS:    3") {
		t.Errorf("expected 3 records after one-shot scrape, got:\n%s", out)
	}
}

// TestStagesRefuseMissingDatabase verifies that the later stages refuse
// to run before discovery ever populated a store.
func TestStagesRefuseMissingDatabase(t *testing.T) {
	t.Parallel()

	dbDir := t.TempDir()

	if _, err := runCommand(t, "talks", "--db-dir", dbDir); err == nil {
		t.Error("expected talks to fail without a database")
	}
	if _, err := runCommand(t, "details", "--db-dir", dbDir); err == nil {
		t.Error("expected details to fail without a database")
	}
	if _, err := runCommand(t, "check", "--db-dir", dbDir); err == nil {
		t.Error("expected check to fail without a database")
	}
}

// TestSymposiaRejectsUnknownEdition verifies catalog resolution errors
// surface before any network access.
func TestSymposiaRejectsUnknownEdition(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "symposia", "mst99", "--db-dir", t.TempDir())
	if err == nil {
		t.Fatal("expected error for unknown edition")
	}
	if !strings.Contains(err.Error(), "mst99") {
		t.Errorf("expected error to name the edition, got: %v", err)
	}
}
