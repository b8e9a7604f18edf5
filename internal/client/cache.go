package client

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Cache stores fetched palettes locally so tooling can render offline and
// unchanged palettes are not re-written.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the SQLite cache database at dir/palettes.db.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "palettes.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cached_palettes (
		name       TEXT PRIMARY KEY,
		hash       TEXT NOT NULL,
		fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cached_palettes table: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cached_tokens (
		palette TEXT NOT NULL,
		token   TEXT NOT NULL,
		hex     TEXT NOT NULL,
		PRIMARY KEY (palette, token)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cached_tokens table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Hash returns the stored content hash for a palette, or "" if not cached.
func (c *Cache) Hash(name string) (string, error) {
	var hash string
	err := c.db.QueryRow(
		`SELECT hash FROM cached_palettes WHERE name = ?`, name,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

// Store replaces a palette's cached tokens and records its content hash.
func (c *Cache) Store(name, hash string, tokens map[string]string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning cache tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cached_tokens WHERE palette = ?`, name); err != nil {
		return fmt.Errorf("clearing cached tokens: %w", err)
	}
	for token, hexVal := range tokens {
		if _, err := tx.Exec(
			`INSERT INTO cached_tokens (palette, token, hex) VALUES (?, ?, ?)`,
			name, token, hexVal,
		); err != nil {
			return fmt.Errorf("caching token %s: %w", token, err)
		}
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO cached_palettes (name, hash, fetched_at) VALUES (?, ?, ?)`,
		name, hash, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("recording palette hash: %w", err)
	}

	return tx.Commit()
}

// Tokens returns a palette's cached token→hex map. Empty map if not cached.
func (c *Cache) Tokens(name string) (map[string]string, error) {
	rows, err := c.db.Query(
		`SELECT token, hex FROM cached_tokens WHERE palette = ? ORDER BY token`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make(map[string]string)
	for rows.Next() {
		var token, hexVal string
		if err := rows.Scan(&token, &hexVal); err != nil {
			return nil, err
		}
		tokens[token] = hexVal
	}
	return tokens, rows.Err()
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// HashTokens computes a stable SHA-256 over a token→hex map. Keys are sorted
// so the hash is independent of map iteration order.
func HashTokens(tokens map[string]string) string {
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte("="))
		h.Write([]byte(strings.ToUpper(tokens[k])))
		h.Write([]byte("\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
