package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/symposcan/symposcan/internal/database"
	"github.com/symposcan/symposcan/internal/model"
)

// seedRecords creates a store holding one clean and one sentineled
// record, returning its directory.
func seedRecords(t *testing.T) string {
	t.Helper()

	dbDir := t.TempDir()
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	recs := []model.TalkRecord{
		{
			TalkName:      "Sintering of Oxide Ceramics",
			TalkURL:       "http://www.example.org/PM/PM.nsf/TalksByUNID/T001?OpenDocument",
			SymposiumName: "Ceramics",
			Authors:       "A. Smith, B. Jones; Example University",
			Abstract:      strings.Repeat("Sintering kinetics of oxide ceramics are studied in detail. ", 3),
		},
		{
			TalkName:      "Grain Boundary Engineering",
			TalkURL:       "http://www.example.org/PM/PM.nsf/TalksByUNID/T002?OpenDocument",
			SymposiumName: "Ceramics",
			Authors:       model.NotAvailable,
			Abstract:      model.NotAvailable,
		},
	}
	for _, rec := range recs {
		if err := db.InsertTalkRecord(ctx, rec); err != nil {
			t.Fatalf("failed to insert record: %v", err)
		}
	}
	return dbDir
}

// TestCheckCmd tests the check command end to end.
func TestCheckCmd(t *testing.T) {
	t.Parallel()

	t.Run("text report on stdout", func(t *testing.T) {
		t.Parallel()

		dbDir := seedRecords(t)
		out, err := runCommand(t, "check", "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("check command failed: %v", err)
		}

		if !strings.Contains(out, "Grain Boundary Engineering") {
			t.Errorf("expected suspect talk in output, got:\n%s", out)
		}
		if strings.Contains(out, "Sintering of Oxide Ceramics") {
			t.Errorf("clean talk must not appear, got:\n%s", out)
		}
	})

	t.Run("markdown report to file", func(t *testing.T) {
		t.Parallel()

		dbDir := seedRecords(t)
		outPath := filepath.Join(t.TempDir(), "reports", "check.md")

		if _, err := runCommand(t, "check", "--db-dir", dbDir, "--markdown", "--output", outPath); err != nil {
			t.Fatalf("check command failed: %v", err)
		}

		data, err := os.ReadFile(outPath) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if !strings.Contains(string(data), "# Proceedings Consistency Report") {
			t.Errorf("expected markdown title in report, got:\n%s", data)
		}
	})

	t.Run("json report decodes", func(t *testing.T) {
		t.Parallel()

		dbDir := seedRecords(t)
		out, err := runCommand(t, "check", "--db-dir", dbDir, "--json")
		if err != nil {
			t.Fatalf("check command failed: %v", err)
		}

		var decoded struct {
			Total    int `json:"total"`
			Suspects []struct {
				Reasons []string `json:"reasons"`
			} `json:"suspects"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("failed to decode JSON report: %v", err)
		}
		if decoded.Total != 2 || len(decoded.Suspects) != 1 {
			t.Errorf("unexpected report: %+v", decoded)
		}
	})

	t.Run("rejects conflicting formats", func(t *testing.T) {
		t.Parallel()

		dbDir := seedRecords(t)
		if _, err := runCommand(t, "check", "--db-dir", dbDir, "--json", "--markdown"); err == nil {
			t.Error("expected error for --json with --markdown")
		}
	})
}
