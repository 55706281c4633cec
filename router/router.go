// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/adareyes/talentflow/cliparse"
	"github.com/adareyes/talentflow/handlers"
	"github.com/adareyes/talentflow/middleware"
	"github.com/adareyes/talentflow/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(st)
	candidateHandler := handlers.NewCandidateHandler(st)
	assessmentHandler := handlers.NewAssessmentHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)

	// API routes run behind the fault policy; health and root do not, so
	// probes stay reliable while the API misbehaves on purpose.
	policy := middleware.PolicyFromConfig(cfg)
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithFaults(policy, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Jobs
	mux.HandleFunc("GET /api/jobs", api(jobHandler.ListJobs))
	mux.HandleFunc("POST /api/jobs", api(jobHandler.CreateJob))
	mux.HandleFunc("GET /api/jobs/{id}", api(jobHandler.GetJob))
	mux.HandleFunc("PATCH /api/jobs/{id}", api(jobHandler.UpdateJob))
	mux.HandleFunc("PATCH /api/jobs/{id}/reorder", api(jobHandler.ReorderJob))

	// Candidates
	mux.HandleFunc("GET /api/candidates", api(candidateHandler.ListCandidates))
	mux.HandleFunc("POST /api/candidates", api(candidateHandler.CreateCandidate))
	mux.HandleFunc("GET /api/candidates/{id}", api(candidateHandler.GetCandidate))
	mux.HandleFunc("PATCH /api/candidates/{id}", api(candidateHandler.UpdateCandidate))
	mux.HandleFunc("GET /api/candidates/{id}/timeline", api(candidateHandler.Timeline))

	// Assessments
	mux.HandleFunc("GET /api/assessments", api(assessmentHandler.ListAssessments))
	mux.HandleFunc("GET /api/assessments/{jobId}", api(assessmentHandler.GetAssessment))
	mux.HandleFunc("PUT /api/assessments/{jobId}", api(assessmentHandler.SaveAssessment))
	mux.HandleFunc("POST /api/assessments/{jobId}/submit", api(assessmentHandler.SubmitAssessment))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard/summary", api(dashboardHandler.Summary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("talentflow API v1"))
	})

	return mux
}
