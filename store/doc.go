// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer: a thin repository over database/sql
that holds every record the hiring pipeline works with.

# Opening

Open connects using the configured driver and database URL:

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if err := st.CreateSchema(ctx); err != nil {
		log.Fatal(err)
	}

CreateSchema is safe to call multiple times - every table and index uses
IF NOT EXISTS.

# Tables

  - jobs: Job postings with slug, status, tags, and manual sort order
  - candidates: Applicants with their current pipeline stage
  - timelines: Stage-transition events, one per stage change
  - assessments: Per-job questionnaires (sections stored as JSON)
  - assessment_responses: Submitted answer sets
  - profile: Single-row recruiter profile
  - settings: Single-row preferences
  - notifications: In-app notification feed

There are no foreign key constraints: a candidate may reference a job id
that no longer exists, and readers fall back to a placeholder title.

# Semantics

Lookups of a missing record return ErrNotFound. The one deliberate
exception is AssessmentByJob, which returns (nil, nil) when a job has no
assessment - absence is a normal state there, not a fault.

List operations filter in SQL, then sort and paginate in Go. Pages are
1-based; a page past the end is empty, never an error.

Timestamps are stored as unix nanoseconds (BIGINT) so the same schema
works on both SQLite and Postgres. Placeholders are written in ? form and
rebound to $N for Postgres.
*/
package store
