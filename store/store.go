// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/adareyes/talentflow/cliparse"
)

// ErrNotFound is returned by single-entity lookups and updates when no
// record matches. It is a normal result, not a fault: callers branch on it
// with errors.Is.
var ErrNotFound = errors.New("not found")

// Store is the persisted local table store. Every operation the API server
// and the client fallback path perform runs through the same Store methods,
// which is what makes the two paths equivalent for equivalent inputs.
type Store struct {
	db     *sql.DB
	driver string
}

// Open opens the store described by the configuration and verifies the
// connection. The default backend is an embedded sqlite file.
func Open(cfg cliparse.Config) (*Store, error) {
	driverName := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driverName = "postgres"
	}

	db, err := sql.Open(driverName, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := New(db, cfg.DatabaseType)

	if cfg.DatabaseType == "sqlite" {
		// WAL mode for concurrent readers
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return s, nil
}

// New wraps an existing connection. Used by tests to run against an
// in-memory sqlite database.
func New(db *sql.DB, databaseType string) *Store {
	if databaseType != "postgres" {
		// sqlite supports a single writer; one connection also keeps an
		// in-memory database from vanishing between pool checkouts
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}
	return &Store{db: db, driver: databaseType}
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// q rewrites ? placeholders to $N for the postgres backend. Queries are
// written in sqlite style throughout.
func (s *Store) q(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Timestamps are stored as unix nanoseconds so that ORDER BY and range
// scans stay cheap on both backends.

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// List-valued fields (tags, sections, responses) are stored as JSON text.

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode field: %w", err)
	}
	return string(b), nil
}

func decodeStrings(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode field: %w", err)
	}
	return out, nil
}
