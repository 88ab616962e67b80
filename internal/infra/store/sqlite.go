package store

import (
	"bytes"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"
)

// ─── SQLite Store ───────────────────────────────────────────────────────────
// One table, one row per key. The JSON document model keeps the storage
// contract identical to the in-memory store and lets the schema evolve by
// merging defaults at read time instead of migrating rows.

// Migrations returns the schema statements, executed one at a time at open.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

// SQLite is a KV backed by a local sqlite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get implements KV. Any backend or decode fault reads as a miss.
func (s *SQLite) Get(key string, dst any) bool {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return false
	}
	return decodeJSON(raw, dst)
}

// Set implements KV.
func (s *SQLite) Set(key string, v any) error {
	raw, err := encodeJSON(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, raw)
	return err
}

// ─── JSON Helpers ───────────────────────────────────────────────────────────

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSON(raw []byte, dst any) bool {
	return json.Unmarshal(raw, dst) == nil
}
