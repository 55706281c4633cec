// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adareyes/talentflow/middleware"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(st *store.Store) *CandidateHandler {
	return &CandidateHandler{store: st}
}

func validStage(stage string) bool {
	for _, s := range models.Stages {
		if stage == s {
			return true
		}
	}
	return false
}

// ListCandidates handles GET /api/candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	opts := store.ListCandidatesOptions{
		Search:   r.URL.Query().Get("search"),
		Stage:    r.URL.Query().Get("stage"),
		JobID:    r.URL.Query().Get("jobId"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.store.ListCandidates(r.Context(), opts)
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetCandidate handles GET /api/candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	candidate, err := h.store.GetCandidate(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to get candidate", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateEnvelope{Candidate: *candidate})
}

// CreateCandidate handles POST /api/candidates
func (h *CandidateHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Stage != "" && !validStage(req.Stage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid stage")
		return
	}

	candidate, err := h.store.CreateCandidate(r.Context(), req)
	if err != nil {
		slog.Error("failed to create candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}

	slog.Info("candidate created", "candidate_id", candidate.ID, "job_id", candidate.JobID)

	middleware.JSONResponse(w, http.StatusCreated, models.CandidateEnvelope{Candidate: *candidate})
}

// UpdateCandidate handles PATCH /api/candidates/{id}
func (h *CandidateHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch models.CandidatePatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if patch.Stage != nil && !validStage(*patch.Stage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid stage")
		return
	}

	candidate, err := h.store.UpdateCandidate(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to update candidate", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	if patch.Stage != nil {
		slog.Info("candidate updated", "candidate_id", id, "stage", candidate.Stage)
	} else {
		slog.Info("candidate updated", "candidate_id", id)
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateEnvelope{Candidate: *candidate})
}

// Timeline handles GET /api/candidates/{id}/timeline
func (h *CandidateHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	events, err := h.store.Timeline(r.Context(), id)
	if err != nil {
		slog.Error("failed to get timeline", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TimelineEnvelope{Timeline: events})
}
