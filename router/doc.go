// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to their handlers.

# Routes

Jobs:

	GET    /api/jobs                      List with search, status, sort, paging
	POST   /api/jobs                      Create
	GET    /api/jobs/{id}                 Fetch one
	PATCH  /api/jobs/{id}                 Partial update
	PATCH  /api/jobs/{id}/reorder         Set manual sort order

Candidates:

	GET    /api/candidates                List with search, stage, jobId, paging
	POST   /api/candidates                Create
	GET    /api/candidates/{id}           Fetch one
	PATCH  /api/candidates/{id}           Partial update (stage changes recorded)
	GET    /api/candidates/{id}/timeline  Stage-transition history

Assessments:

	GET    /api/assessments               List all
	GET    /api/assessments/{jobId}       Fetch (null when absent)
	PUT    /api/assessments/{jobId}       Create or replace
	POST   /api/assessments/{jobId}/submit  Record a response set

Dashboard:

	GET    /api/dashboard/summary         Aggregate counts and recent activity

# Fault Injection

Every /api route runs behind the configured fault policy (latency plus
random 500s). /health and / are exempt so probes and smoke checks stay
dependable.
*/
package router
