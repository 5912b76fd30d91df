package phrase

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Schema for the phrase usage store.
const schema = `
CREATE TABLE IF NOT EXISTS phrases (
    phrase       TEXT PRIMARY KEY,
    uses         INTEGER NOT NULL DEFAULT 0,
    last_used_ns INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_phrases_uses ON phrases(uses DESC, last_used_ns DESC);
`

// Usage is one recorded phrase with its commit statistics.
type Usage struct {
	Phrase   string
	Uses     int64
	LastUsed time.Time
}

// Store persists committed phrases and their usage counts so front ends
// can offer recently and frequently used phrases.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the usage database at the given path.
func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open usage store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply usage schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record counts one commit of the given phrase.
func (s *Store) Record(phrase string) error {
	if phrase == "" {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO phrases (phrase, uses, last_used_ns) VALUES (?, 1, ?)
		ON CONFLICT(phrase) DO UPDATE SET
			uses = uses + 1,
			last_used_ns = excluded.last_used_ns`,
		phrase, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("record phrase: %w", err)
	}
	return nil
}

// Top returns up to n phrases ordered by use count, most used first.
func (s *Store) Top(n int) ([]Usage, error) {
	rows, err := s.db.Query(`
		SELECT phrase, uses, last_used_ns FROM phrases
		ORDER BY uses DESC, last_used_ns DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top phrases: %w", err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		var ns int64
		if err := rows.Scan(&u.Phrase, &u.Uses, &ns); err != nil {
			return nil, fmt.Errorf("scan phrase row: %w", err)
		}
		u.LastUsed = time.Unix(0, ns)
		out = append(out, u)
	}
	return out, rows.Err()
}

// Lookup returns the usage row for one phrase, or ok=false when the
// phrase has never been committed.
func (s *Store) Lookup(phrase string) (Usage, bool, error) {
	var u Usage
	var ns int64
	err := s.db.QueryRow(
		`SELECT phrase, uses, last_used_ns FROM phrases WHERE phrase = ?`,
		phrase).Scan(&u.Phrase, &u.Uses, &ns)
	if err == sql.ErrNoRows {
		return Usage{}, false, nil
	}
	if err != nil {
		return Usage{}, false, fmt.Errorf("lookup phrase: %w", err)
	}
	u.LastUsed = time.Unix(0, ns)
	return u, true, nil
}
