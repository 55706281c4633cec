// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

// DefaultTimeout bounds a single remote call.
const DefaultTimeout = 10 * time.Second

// Remote talks to the hiring API over HTTP. Any transport failure or
// non-2xx status surfaces as an error; the resolver treats them all the
// same way.
type Remote struct {
	baseURL string
	http    *http.Client
}

// NewRemote creates a client for the API at baseURL.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// statusError reports a non-2xx response.
type statusError struct {
	Status int
	Path   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("remote returned %d for %s", e.Status, e.Path)
}

func (r *Remote) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return r.do(req, path, out)
}

func (r *Remote) sendJSON(ctx context.Context, method, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req, path, out)
}

func (r *Remote) do(req *http.Request, path string, out any) error {
	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &statusError{Status: resp.StatusCode, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func pagingQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	return q
}

// ListJobs fetches one page of jobs.
func (r *Remote) ListJobs(ctx context.Context, opts store.ListJobsOptions) (*models.JobPage, error) {
	q := pagingQuery(opts.Page, opts.PageSize)
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}

	var page models.JobPage
	if err := r.getJSON(ctx, "/api/jobs", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetJob fetches a single job.
func (r *Remote) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var envelope models.JobEnvelope
	if err := r.getJSON(ctx, "/api/jobs/"+url.PathEscape(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// CreateJob posts a new job.
func (r *Remote) CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error) {
	var envelope models.JobEnvelope
	if err := r.sendJSON(ctx, http.MethodPost, "/api/jobs", req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// UpdateJob patches an existing job.
func (r *Remote) UpdateJob(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	var envelope models.JobEnvelope
	if err := r.sendJSON(ctx, http.MethodPatch, "/api/jobs/"+url.PathEscape(id), patch, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// ReorderJob sets a job's manual sort order.
func (r *Remote) ReorderJob(ctx context.Context, id string, newOrder int) (*models.Job, error) {
	var envelope models.JobEnvelope
	req := models.ReorderJobRequest{NewOrder: newOrder}
	if err := r.sendJSON(ctx, http.MethodPatch, "/api/jobs/"+url.PathEscape(id)+"/reorder", req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// ListCandidates fetches one page of candidates.
func (r *Remote) ListCandidates(ctx context.Context, opts store.ListCandidatesOptions) (*models.CandidatePage, error) {
	q := pagingQuery(opts.Page, opts.PageSize)
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Stage != "" {
		q.Set("stage", opts.Stage)
	}
	if opts.JobID != "" {
		q.Set("jobId", opts.JobID)
	}

	var page models.CandidatePage
	if err := r.getJSON(ctx, "/api/candidates", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCandidate fetches a single candidate.
func (r *Remote) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	var envelope models.CandidateEnvelope
	if err := r.getJSON(ctx, "/api/candidates/"+url.PathEscape(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Candidate, nil
}

// CreateCandidate posts a new candidate.
func (r *Remote) CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	var envelope models.CandidateEnvelope
	if err := r.sendJSON(ctx, http.MethodPost, "/api/candidates", req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Candidate, nil
}

// UpdateCandidate patches an existing candidate.
func (r *Remote) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	var envelope models.CandidateEnvelope
	if err := r.sendJSON(ctx, http.MethodPatch, "/api/candidates/"+url.PathEscape(id), patch, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Candidate, nil
}

// Timeline fetches a candidate's stage-transition history.
func (r *Remote) Timeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	var envelope models.TimelineEnvelope
	if err := r.getJSON(ctx, "/api/candidates/"+url.PathEscape(candidateID)+"/timeline", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Timeline, nil
}

// ListAssessments fetches every assessment.
func (r *Remote) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	var envelope models.AssessmentListEnvelope
	if err := r.getJSON(ctx, "/api/assessments", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Assessments, nil
}

// AssessmentByJob fetches the assessment for a job; (nil, nil) when the
// job has none.
func (r *Remote) AssessmentByJob(ctx context.Context, jobID string) (*models.Assessment, error) {
	var envelope models.AssessmentEnvelope
	if err := r.getJSON(ctx, "/api/assessments/"+url.PathEscape(jobID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Assessment, nil
}

// SaveAssessment creates or replaces the assessment for a job.
func (r *Remote) SaveAssessment(ctx context.Context, jobID string, req models.SaveAssessmentRequest) (*models.Assessment, error) {
	var envelope models.AssessmentEnvelope
	if err := r.sendJSON(ctx, http.MethodPut, "/api/assessments/"+url.PathEscape(jobID), req, &envelope); err != nil {
		return nil, err
	}
	return envelope.Assessment, nil
}

// AddAssessmentResponse submits a response set for an assessment.
func (r *Remote) AddAssessmentResponse(ctx context.Context, req models.SubmitAssessmentRequest) (*models.AssessmentResponse, error) {
	var envelope models.AssessmentResponseEnvelope
	// The submit route is addressed by job, but the payload names the
	// assessment; the job segment is informational on this endpoint.
	path := "/api/assessments/" + url.PathEscape(req.AssessmentID) + "/submit"
	if err := r.sendJSON(ctx, http.MethodPost, path, req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Response, nil
}

// DashboardSummary fetches the dashboard aggregates.
func (r *Remote) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := r.getJSON(ctx, "/api/dashboard/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
