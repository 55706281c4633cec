// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared fixtures for handler and client tests:
// an in-memory store, a zero-fault config, and HTTP assertion helpers.
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/adareyes/talentflow/cliparse"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

// SetupTestStore creates a fresh in-memory store with the full schema.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := store.New(db, "sqlite")
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return s
}

// GetTestConfig returns a configuration with fault injection disabled, so
// tests exercise handler behavior rather than the failure simulator.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4400,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		ErrorRate:    0,
		LatencyMin:   0,
		LatencyMax:   0,
	}
}

// CreateTestJob inserts a job and returns it.
func CreateTestJob(t *testing.T, s *store.Store, title string) *models.Job {
	t.Helper()

	job, err := s.CreateJob(context.Background(), models.CreateJobRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateTestCandidate inserts a candidate referencing the given job.
func CreateTestCandidate(t *testing.T, s *store.Store, name, jobID string) *models.Candidate {
	t.Helper()

	candidate, err := s.CreateCandidate(context.Background(), models.CreateCandidateRequest{
		Name:  name,
		Email: name + "@example.com",
		JobID: jobID,
	})
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
	return candidate
}

// MakeRequest creates an HTTP test request
func MakeRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
