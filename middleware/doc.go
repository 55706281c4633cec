// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/jobs", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Fault Injection

API handlers run behind a fault policy that simulates an unreliable
network: every request waits out a random latency and fails with a 500 at
the configured rate, before the handler runs:

	policy := middleware.PolicyFromConfig(cfg)
	mux.HandleFunc("GET /api/jobs", middleware.WithLogging(
		middleware.WithFaults(policy, handler)))

Injected failures never reach the store, so clients can retry or fall back
without seeing partial writes.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
