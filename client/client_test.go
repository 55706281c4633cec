// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/adareyes/talentflow/cliparse"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/router"
	"github.com/adareyes/talentflow/store"
	"github.com/adareyes/talentflow/testutil"
)

// newResolver wires a resolving client over an httptest server and a
// local store. The server shares the store, mirroring the production
// layout where the mock API and the local fallback read the same tables.
func newResolver(t *testing.T, cfg cliparse.Config) (*Client, *store.Store) {
	t.Helper()

	st := testutil.SetupTestStore(t)
	server := httptest.NewServer(router.NewRouter(st, cfg))
	t.Cleanup(server.Close)

	return New(NewRemote(server.URL), st), st
}

func TestResolverRemotePath(t *testing.T) {
	c, _ := newResolver(t, testutil.GetTestConfig())
	ctx := context.Background()

	created, err := c.CreateJob(ctx, models.CreateJobRequest{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if created.Slug != "backend-engineer" {
		t.Errorf("Expected slug backend-engineer, got %s", created.Slug)
	}

	got, err := c.GetJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Expected job %s, got %s", created.ID, got.ID)
	}

	page, err := c.ListJobs(ctx, store.ListJobsOptions{Search: "backend"})
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 match, got %d", page.Total)
	}
}

func TestResolverFallsBackWhenRemoteAlwaysFails(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.ErrorRate = 1 // every API call returns an injected 500
	c, st := newResolver(t, cfg)
	ctx := context.Background()

	// The operation still succeeds, served by the local store
	created, err := c.CreateJob(ctx, models.CreateJobRequest{Title: "Data Engineer"})
	if err != nil {
		t.Fatalf("Expected local fallback to serve CreateJob, got %v", err)
	}

	// And the write is visible in the store
	stored, err := st.GetJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetJob on store failed: %v", err)
	}
	if stored.Title != "Data Engineer" {
		t.Errorf("Expected stored job, got %+v", stored)
	}

	page, err := c.ListJobs(ctx, store.ListJobsOptions{})
	if err != nil {
		t.Fatalf("Expected local fallback to serve ListJobs, got %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 job via fallback, got %d", page.Total)
	}
}

func TestResolverFallsBackWhenServerIsDown(t *testing.T) {
	st := testutil.SetupTestStore(t)
	server := httptest.NewServer(router.NewRouter(st, testutil.GetTestConfig()))
	c := New(NewRemote(server.URL), st)
	ctx := context.Background()

	if _, err := c.CreateJob(ctx, models.CreateJobRequest{Title: "Platform Engineer"}); err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	// Kill the remote entirely; reads keep working off the local store
	server.Close()

	page, err := c.ListJobs(ctx, store.ListJobsOptions{})
	if err != nil {
		t.Fatalf("Expected fallback with server down, got %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 job, got %d", page.Total)
	}
}

func TestResolverMissingRecordSurfacesNotFound(t *testing.T) {
	c, _ := newResolver(t, testutil.GetTestConfig())

	// Remote 404 triggers the fallback; the local store then reports the
	// record as genuinely missing.
	_, err := c.GetJob(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected store.ErrNotFound, got %v", err)
	}
}

func TestResolverNullAssessment(t *testing.T) {
	c, _ := newResolver(t, testutil.GetTestConfig())

	a, err := c.AssessmentByJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("AssessmentByJob failed: %v", err)
	}
	if a != nil {
		t.Errorf("Expected nil assessment, got %+v", a)
	}
}

func TestResolverCandidateWorkflow(t *testing.T) {
	c, _ := newResolver(t, testutil.GetTestConfig())
	ctx := context.Background()

	job, err := c.CreateJob(ctx, models.CreateJobRequest{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	candidate, err := c.CreateCandidate(ctx, models.CreateCandidateRequest{
		Name:  "Mina Okafor",
		Email: "mina@example.com",
		JobID: job.ID,
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	stage := models.StageScreen
	updated, err := c.UpdateCandidate(ctx, candidate.ID, models.CandidatePatch{Stage: &stage})
	if err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}
	if updated.Stage != models.StageScreen {
		t.Errorf("Expected stage screen, got %s", updated.Stage)
	}

	events, err := c.Timeline(ctx, candidate.ID)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(events) != 1 || events[0].ToStage != models.StageScreen {
		t.Errorf("Expected one transition to screen, got %+v", events)
	}

	summary, err := c.DashboardSummary(ctx)
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}
	if summary.TotalCandidates != 1 || summary.CandidatesPerStage[models.StageScreen] != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}

func TestResolverAssessmentSubmit(t *testing.T) {
	c, _ := newResolver(t, testutil.GetTestConfig())
	ctx := context.Background()

	saved, err := c.SaveAssessment(ctx, "job-1", models.SaveAssessmentRequest{Title: "Screen"})
	if err != nil {
		t.Fatalf("SaveAssessment failed: %v", err)
	}

	resp, err := c.AddAssessmentResponse(ctx, models.SubmitAssessmentRequest{
		AssessmentID: saved.ID,
		CandidateID:  "candidate-1",
		Responses:    map[string]any{"q1": "Yes"},
	})
	if err != nil {
		t.Fatalf("AddAssessmentResponse failed: %v", err)
	}
	if resp.AssessmentID != saved.ID {
		t.Errorf("Expected response bound to %s, got %s", saved.ID, resp.AssessmentID)
	}
}
