// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"math"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestStore opens a fresh in-memory database with the full schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := New(db, "sqlite")
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return s
}

func TestCreateSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestPlaceholderRebind(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		query    string
		expected string
	}{
		{"sqlite passthrough", "sqlite", "SELECT * FROM jobs WHERE id = ?", "SELECT * FROM jobs WHERE id = ?"},
		{"postgres single", "postgres", "SELECT * FROM jobs WHERE id = ?", "SELECT * FROM jobs WHERE id = $1"},
		{"postgres multiple", "postgres", "UPDATE jobs SET title = ?, status = ? WHERE id = ?", "UPDATE jobs SET title = $1, status = $2 WHERE id = $3"},
		{"postgres none", "postgres", "SELECT COUNT(*) FROM jobs", "SELECT COUNT(*) FROM jobs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{driver: tt.driver}
			if got := s.q(tt.query); got != tt.expected {
				t.Errorf("q(%q) = %q, want %q", tt.query, got, tt.expected)
			}
		})
	}
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		page     int
		pageSize int
		expected []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"middle page", 2, 2, []int{3, 4}},
		{"partial last page", 3, 2, []int{5}},
		{"past the end", 4, 2, []int{}},
		{"whole slice", 1, 10, []int{1, 2, 3, 4, 5}},
		{"huge page number", (1 << 60) + 1, 10, []int{}},
		{"max int page", math.MaxInt, math.MaxInt, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageSlice(items, tt.page, tt.pageSize)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
