// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/adareyes/talentflow/middleware"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

type AssessmentHandler struct {
	store *store.Store
}

func NewAssessmentHandler(st *store.Store) *AssessmentHandler {
	return &AssessmentHandler{store: st}
}

// ListAssessments handles GET /api/assessments
func (h *AssessmentHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.store.ListAssessments(r.Context())
	if err != nil {
		slog.Error("failed to list assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssessmentListEnvelope{Assessments: assessments})
}

// GetAssessment handles GET /api/assessments/{jobId}.
// A job without an assessment is a normal state: the response is 200 with
// a null assessment, never a 404.
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	assessment, err := h.store.AssessmentByJob(r.Context(), jobID)
	if err != nil {
		slog.Error("failed to get assessment", "job_id", jobID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssessmentEnvelope{Assessment: assessment})
}

// SaveAssessment handles PUT /api/assessments/{jobId}
func (h *AssessmentHandler) SaveAssessment(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	var req models.SaveAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	assessment, err := h.store.SaveAssessment(r.Context(), jobID, req)
	if err != nil {
		slog.Error("failed to save assessment", "job_id", jobID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assessment")
		return
	}

	slog.Info("assessment saved", "job_id", jobID, "assessment_id", assessment.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AssessmentEnvelope{Assessment: assessment})
}

// SubmitAssessment handles POST /api/assessments/{jobId}/submit
func (h *AssessmentHandler) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	var req models.SubmitAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AssessmentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "assessmentId is required")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidateId is required")
		return
	}

	response, err := h.store.AddAssessmentResponse(r.Context(), req)
	if err != nil {
		slog.Error("failed to record assessment response", "job_id", jobID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit assessment")
		return
	}

	slog.Info("assessment submitted",
		"assessment_id", req.AssessmentID, "candidate_id", req.CandidateID)

	middleware.JSONResponse(w, http.StatusCreated, models.AssessmentResponseEnvelope{Response: *response})
}
