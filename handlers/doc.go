// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the hiring API.

Handlers are grouped by resource (jobs, candidates, assessments,
dashboard), each a small struct over the store:

	jobHandler := handlers.NewJobHandler(st)
	mux.HandleFunc("POST /api/jobs", jobHandler.CreateJob)

Every handler follows the same shape: parse and validate input, call the
store, map store.ErrNotFound to a 404, and write a JSON response. All
writes go through the same store methods the local fallback path uses, so
a request served here and an operation served locally agree on semantics.

Notable deviations from plain CRUD:

  - GET /api/assessments/{jobId} returns 200 with {"assessment": null}
    when the job has no assessment; absence is not an error.
  - PATCH /api/candidates/{id} records a timeline event whenever the
    patch moves the candidate to a different stage.
  - PATCH /api/jobs/{id}/reorder only touches the addressed job; other
    jobs keep their order values.
*/
package handlers
