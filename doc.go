// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the talentflow API server.

Talentflow is the data backbone of a small applicant-tracking tool: a
persisted store of jobs, candidates, stage timelines, and per-job
assessments, fronted by a deliberately unreliable HTTP API. The API
injects latency and random failures so clients must handle the remote
being down; the client package resolves every operation remote-first with
a local-store fallback that shares the API's semantics.

# Starting the Server

	go run . -p 4400 -d talentflow.db

Or against Postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flags or environment, .env supported):

  - PORT (-p): Server port (default: 4400)
  - DATABASE_URL (-d): SQLite path or Postgres connection string
    (default: talentflow.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LATENCY_MIN_MS / LATENCY_MAX_MS: injected latency window
    (default: 200-1200ms)
  - ERROR_RATE: injected failure rate in [0,1] (default: 0.05)
  - -demo: low latency, zero failures
  - -seed / -force-reseed: seed demo data on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (jobs, candidates, assessments,
    dashboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: fault injection, CORS, logging, JSON helpers
  - models: Domain and request/response types
  - store: Persistence over SQLite or Postgres
  - seed: Demo data generation
  - client: Remote-first resolver with local fallback
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
