// Package store persists the editing session's document and template
// selection in a local key-value SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-studio/internal/types"
)

// ErrNotFound is the "absent" sentinel: the key is missing or its payload
// could not be decoded. Callers treat both the same way and proceed with
// in-memory defaults.
var ErrNotFound = errors.New("not found")

// Storage keys.
const (
	keyDocument = "resume_document"
	keyTemplate = "resume_template"
)

// Store wraps a SQLite database holding the serialized resume document and
// the selected template identifier.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store under dataDir. Pass ":memory:" for an
// in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "resume-studio.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// SaveDocument serializes and stores the document.
func (s *Store) SaveDocument(doc *types.ResumeDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return s.put(keyDocument, string(data))
}

// LoadDocument returns the stored document, or ErrNotFound when nothing
// usable is stored. An undecodable payload counts as absent, not as an
// error the caller has to distinguish.
func (s *Store) LoadDocument() (*types.ResumeDocument, error) {
	raw, err := s.get(keyDocument)
	if err != nil {
		return nil, err
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, ErrNotFound
	}
	return &doc, nil
}

// SaveTemplate stores the selected template identifier.
func (s *Store) SaveTemplate(tpl types.Template) error {
	return s.put(keyTemplate, string(tpl))
}

// LoadTemplate returns the stored template selection, or ErrNotFound.
// Unknown stored values parse to the default variant rather than failing.
func (s *Store) LoadTemplate() (types.Template, error) {
	raw, err := s.get(keyTemplate)
	if err != nil {
		return "", err
	}
	return types.ParseTemplate(raw), nil
}
