// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adareyes/talentflow/middleware"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

type JobHandler struct {
	store *store.Store
}

func NewJobHandler(st *store.Store) *JobHandler {
	return &JobHandler{store: st}
}

// parsePaging reads page and pageSize query parameters; zero means "use
// the store default".
func parsePaging(r *http.Request) (page, pageSize int) {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pageSize = n
		}
	}
	return page, pageSize
}

// ListJobs handles GET /api/jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	opts := store.ListJobsOptions{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Sort:     r.URL.Query().Get("sort"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.store.ListJobs(r.Context(), opts)
	if err != nil {
		slog.Error("failed to list jobs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetJob handles GET /api/jobs/{id}
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := h.store.GetJob(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		slog.Error("failed to get job", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JobEnvelope{Job: *job})
}

// CreateJob handles POST /api/jobs
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status != "" && req.Status != models.JobActive && req.Status != models.JobArchived {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be active or archived")
		return
	}

	job, err := h.store.CreateJob(r.Context(), req)
	if err != nil {
		slog.Error("failed to create job", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	slog.Info("job created", "job_id", job.ID, "title", job.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.JobEnvelope{Job: *job})
}

// UpdateJob handles PATCH /api/jobs/{id}
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch models.JobPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if patch.Title != nil && *patch.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title cannot be empty")
		return
	}
	if patch.Status != nil && *patch.Status != models.JobActive && *patch.Status != models.JobArchived {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be active or archived")
		return
	}

	job, err := h.store.UpdateJob(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		slog.Error("failed to update job", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update job")
		return
	}

	slog.Info("job updated", "job_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.JobEnvelope{Job: *job})
}

// ReorderJob handles PATCH /api/jobs/{id}/reorder
func (h *JobHandler) ReorderJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.ReorderJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	job, err := h.store.ReorderJob(r.Context(), id, req.NewOrder)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		slog.Error("failed to reorder job", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reorder job")
		return
	}

	slog.Info("job reordered", "job_id", id, "order", req.NewOrder)

	middleware.JSONResponse(w, http.StatusOK, models.JobEnvelope{Job: *job})
}
