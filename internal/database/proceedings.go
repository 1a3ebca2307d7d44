package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/symposcan/symposcan/internal/model"
)

// DBFileName is the database file created under the caller-supplied
// directory.
const DBFileName = "symposcan.db"

// ProceedingsDB provides SQLite-based storage for crawl records.
// All three tables are append-only logs: nothing is ever updated or
// deleted by this system, and corrections require external
// intervention on the file.
type ProceedingsDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ProceedingsDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ProceedingsDB under the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an
// error is returned; the resumable phases use this to refuse running
// against a store the discovery phase never populated.
func Open(dbDir string, opts Options) (*ProceedingsDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (run discovery first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The crawl is a single sequential writer; one connection is all
	// SQLite needs here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pdb := &ProceedingsDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := pdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pdb, nil
}

// Close closes the database connection.
func (pdb *ProceedingsDB) Close() error {
	return pdb.db.Close()
}

// Path returns the path of the backing database file.
func (pdb *ProceedingsDB) Path() string {
	return pdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
//
// None of the tables carry UNIQUE constraints: the uniqueness
// invariants of the crawl (one TalkRecord per talk/symposium pair) are
// checked by the orchestrator before insert, and symposium discovery
// deliberately permits duplicate rows across reruns.
func (pdb *ProceedingsDB) createTables() error {
	schema := `
	-- Symposia discovered under meeting root pages (phase 1)
	CREATE TABLE IF NOT EXISTS symposium_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		url TEXT NOT NULL
	);

	-- Talks known to exist under a symposium (phase 2)
	CREATE TABLE IF NOT EXISTS talk_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		talk_name TEXT NOT NULL,
		talk_url TEXT NOT NULL,
		symposium_name TEXT NOT NULL,
		symposium_url TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_talk_links_symposium ON talk_links(symposium_name);

	-- Fully detailed talk records, the default table (phase 3)
	CREATE TABLE IF NOT EXISTS talks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		talk_name TEXT NOT NULL,
		talk_url TEXT NOT NULL,
		symposium_name TEXT NOT NULL,
		symposium_url TEXT NOT NULL,
		authors TEXT NOT NULL,
		abstract TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_talks_pair ON talks(talk_name, symposium_name);
	`

	_, err := pdb.db.ExecContext(context.Background(), schema)
	return err
}

// InsertSymposiumLink appends a symposium link row. No duplicate check
// is performed; rerunning discovery appends duplicate rows.
func (pdb *ProceedingsDB) InsertSymposiumLink(ctx context.Context, link model.SymposiumLink) error {
	query := `INSERT INTO symposium_links (name, url) VALUES (?, ?)`

	if _, err := pdb.db.ExecContext(ctx, query, link.Name, link.URL); err != nil {
		return fmt.Errorf("failed to insert symposium link: %w", err)
	}
	return nil
}

// ListSymposiumLinks returns all symposium links in insertion order.
func (pdb *ProceedingsDB) ListSymposiumLinks(ctx context.Context) ([]model.SymposiumLink, error) {
	query := `SELECT name, url FROM symposium_links ORDER BY id`

	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list symposium links: %w", err)
	}
	defer rows.Close()

	var links []model.SymposiumLink
	for rows.Next() {
		var link model.SymposiumLink
		if err := rows.Scan(&link.Name, &link.URL); err != nil {
			return nil, fmt.Errorf("failed to scan symposium link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// InsertTalkLink appends a talk link row.
func (pdb *ProceedingsDB) InsertTalkLink(ctx context.Context, link model.TalkLink) error {
	query := `
	INSERT INTO talk_links (talk_name, talk_url, symposium_name, symposium_url)
	VALUES (?, ?, ?, ?)
	`

	_, err := pdb.db.ExecContext(ctx, query,
		link.TalkName,
		link.TalkURL,
		link.SymposiumName,
		link.SymposiumURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert talk link: %w", err)
	}
	return nil
}

// ListTalkLinks returns all talk links in insertion order.
func (pdb *ProceedingsDB) ListTalkLinks(ctx context.Context) ([]model.TalkLink, error) {
	query := `SELECT talk_name, talk_url, symposium_name, symposium_url FROM talk_links ORDER BY id`

	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list talk links: %w", err)
	}
	defer rows.Close()

	var links []model.TalkLink
	for rows.Next() {
		var link model.TalkLink
		if err := rows.Scan(&link.TalkName, &link.TalkURL, &link.SymposiumName, &link.SymposiumURL); err != nil {
			return nil, fmt.Errorf("failed to scan talk link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// HasTalkLinks reports whether any talk link exists for the given
// symposium name. The talk-link discovery phase treats presence of any
// row as "fully scanned", not partial.
func (pdb *ProceedingsDB) HasTalkLinks(ctx context.Context, symposiumName string) (bool, error) {
	query := `SELECT COUNT(*) FROM talk_links WHERE symposium_name = ?`

	var count int
	if err := pdb.db.QueryRowContext(ctx, query, symposiumName).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check talk links: %w", err)
	}
	return count > 0, nil
}

// InsertTalkRecord appends a detailed talk record.
func (pdb *ProceedingsDB) InsertTalkRecord(ctx context.Context, rec model.TalkRecord) error {
	query := `
	INSERT INTO talks (talk_name, talk_url, symposium_name, symposium_url, authors, abstract)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := pdb.db.ExecContext(ctx, query,
		rec.TalkName,
		rec.TalkURL,
		rec.SymposiumName,
		rec.SymposiumURL,
		rec.Authors,
		rec.Abstract,
	)
	if err != nil {
		return fmt.Errorf("failed to insert talk record: %w", err)
	}
	return nil
}

// ListTalkRecords returns all detailed talk records in insertion order.
func (pdb *ProceedingsDB) ListTalkRecords(ctx context.Context) ([]model.TalkRecord, error) {
	query := `
	SELECT talk_name, talk_url, symposium_name, symposium_url, authors, abstract
	FROM talks ORDER BY id
	`

	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list talk records: %w", err)
	}
	defer rows.Close()

	var recs []model.TalkRecord
	for rows.Next() {
		var rec model.TalkRecord
		err := rows.Scan(
			&rec.TalkName,
			&rec.TalkURL,
			&rec.SymposiumName,
			&rec.SymposiumURL,
			&rec.Authors,
			&rec.Abstract,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talk record: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// HasTalkRecord reports whether a detailed record already exists for
// the (talk name, symposium name) pair. This is the idempotence check
// run before every detail insert.
func (pdb *ProceedingsDB) HasTalkRecord(ctx context.Context, talkName, symposiumName string) (bool, error) {
	query := `SELECT COUNT(*) FROM talks WHERE talk_name = ? AND symposium_name = ?`

	var count int
	if err := pdb.db.QueryRowContext(ctx, query, talkName, symposiumName).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check talk record: %w", err)
	}
	return count > 0, nil
}
