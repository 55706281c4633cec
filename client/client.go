// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"log/slog"

	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

// Operations is the data surface the application works against. The
// remote API, the local store, and the resolving client all satisfy it,
// so callers never care which path served them.
type Operations interface {
	ListJobs(ctx context.Context, opts store.ListJobsOptions) (*models.JobPage, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error)
	ReorderJob(ctx context.Context, id string, newOrder int) (*models.Job, error)

	ListCandidates(ctx context.Context, opts store.ListCandidatesOptions) (*models.CandidatePage, error)
	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error)
	UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error)
	Timeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error)

	ListAssessments(ctx context.Context) ([]models.Assessment, error)
	AssessmentByJob(ctx context.Context, jobID string) (*models.Assessment, error)
	SaveAssessment(ctx context.Context, jobID string, req models.SaveAssessmentRequest) (*models.Assessment, error)
	AddAssessmentResponse(ctx context.Context, req models.SubmitAssessmentRequest) (*models.AssessmentResponse, error)

	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

var (
	_ Operations = (*store.Store)(nil)
	_ Operations = (*Remote)(nil)
	_ Operations = (*Client)(nil)
)

// Client resolves every operation remote-first: try the API, and on any
// remote failure serve the same operation from the local store. Both paths
// run the same store code on the server side, so a fallback returns the
// same answer a healthy remote would for equivalent state.
type Client struct {
	remote *Remote
	local  *store.Store
}

// New builds a resolving client over the remote API and the local store.
func New(remote *Remote, local *store.Store) *Client {
	return &Client{remote: remote, local: local}
}

// resolve runs the remote operation and falls back to the local one on
// any error - timeouts, refused connections, and error statuses alike.
func resolve[T any](op string, remote func() (T, error), local func() (T, error)) (T, error) {
	v, err := remote()
	if err == nil {
		return v, nil
	}
	slog.Debug("remote failed, serving from local store", "op", op, "error", err)
	return local()
}

func (c *Client) ListJobs(ctx context.Context, opts store.ListJobsOptions) (*models.JobPage, error) {
	return resolve("ListJobs",
		func() (*models.JobPage, error) { return c.remote.ListJobs(ctx, opts) },
		func() (*models.JobPage, error) { return c.local.ListJobs(ctx, opts) })
}

func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return resolve("GetJob",
		func() (*models.Job, error) { return c.remote.GetJob(ctx, id) },
		func() (*models.Job, error) { return c.local.GetJob(ctx, id) })
}

func (c *Client) CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error) {
	return resolve("CreateJob",
		func() (*models.Job, error) { return c.remote.CreateJob(ctx, req) },
		func() (*models.Job, error) { return c.local.CreateJob(ctx, req) })
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	return resolve("UpdateJob",
		func() (*models.Job, error) { return c.remote.UpdateJob(ctx, id, patch) },
		func() (*models.Job, error) { return c.local.UpdateJob(ctx, id, patch) })
}

func (c *Client) ReorderJob(ctx context.Context, id string, newOrder int) (*models.Job, error) {
	return resolve("ReorderJob",
		func() (*models.Job, error) { return c.remote.ReorderJob(ctx, id, newOrder) },
		func() (*models.Job, error) { return c.local.ReorderJob(ctx, id, newOrder) })
}

func (c *Client) ListCandidates(ctx context.Context, opts store.ListCandidatesOptions) (*models.CandidatePage, error) {
	return resolve("ListCandidates",
		func() (*models.CandidatePage, error) { return c.remote.ListCandidates(ctx, opts) },
		func() (*models.CandidatePage, error) { return c.local.ListCandidates(ctx, opts) })
}

func (c *Client) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	return resolve("GetCandidate",
		func() (*models.Candidate, error) { return c.remote.GetCandidate(ctx, id) },
		func() (*models.Candidate, error) { return c.local.GetCandidate(ctx, id) })
}

func (c *Client) CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	return resolve("CreateCandidate",
		func() (*models.Candidate, error) { return c.remote.CreateCandidate(ctx, req) },
		func() (*models.Candidate, error) { return c.local.CreateCandidate(ctx, req) })
}

func (c *Client) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	return resolve("UpdateCandidate",
		func() (*models.Candidate, error) { return c.remote.UpdateCandidate(ctx, id, patch) },
		func() (*models.Candidate, error) { return c.local.UpdateCandidate(ctx, id, patch) })
}

func (c *Client) Timeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	return resolve("Timeline",
		func() ([]models.TimelineEvent, error) { return c.remote.Timeline(ctx, candidateID) },
		func() ([]models.TimelineEvent, error) { return c.local.Timeline(ctx, candidateID) })
}

func (c *Client) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	return resolve("ListAssessments",
		func() ([]models.Assessment, error) { return c.remote.ListAssessments(ctx) },
		func() ([]models.Assessment, error) { return c.local.ListAssessments(ctx) })
}

func (c *Client) AssessmentByJob(ctx context.Context, jobID string) (*models.Assessment, error) {
	return resolve("AssessmentByJob",
		func() (*models.Assessment, error) { return c.remote.AssessmentByJob(ctx, jobID) },
		func() (*models.Assessment, error) { return c.local.AssessmentByJob(ctx, jobID) })
}

func (c *Client) SaveAssessment(ctx context.Context, jobID string, req models.SaveAssessmentRequest) (*models.Assessment, error) {
	return resolve("SaveAssessment",
		func() (*models.Assessment, error) { return c.remote.SaveAssessment(ctx, jobID, req) },
		func() (*models.Assessment, error) { return c.local.SaveAssessment(ctx, jobID, req) })
}

func (c *Client) AddAssessmentResponse(ctx context.Context, req models.SubmitAssessmentRequest) (*models.AssessmentResponse, error) {
	return resolve("AddAssessmentResponse",
		func() (*models.AssessmentResponse, error) { return c.remote.AddAssessmentResponse(ctx, req) },
		func() (*models.AssessmentResponse, error) { return c.local.AddAssessmentResponse(ctx, req) })
}

func (c *Client) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	return resolve("DashboardSummary",
		func() (*models.DashboardSummary, error) { return c.remote.DashboardSummary(ctx) },
		func() (*models.DashboardSummary, error) { return c.local.DashboardSummary(ctx) })
}
