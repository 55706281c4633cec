// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/testutil"
)

func TestCreateCandidate(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)
	job := testutil.CreateTestJob(t, s, "Backend Engineer")

	req := testutil.MakeRequest(t, "POST", "/api/candidates", models.CreateCandidateRequest{
		Name:  "Mina Okafor",
		Email: "mina@example.com",
		JobID: job.ID,
	})
	w := httptest.NewRecorder()
	handler.CreateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CandidateEnvelope
	testutil.AssertJSON(t, w, &resp)
	if resp.Candidate.Stage != models.StageApplied {
		t.Errorf("Expected default stage applied, got %s", resp.Candidate.Stage)
	}
	if resp.Candidate.JobID != job.ID {
		t.Errorf("Expected jobId %s, got %s", job.ID, resp.Candidate.JobID)
	}
}

func TestCreateCandidateValidation(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)

	tests := []struct {
		name string
		body models.CreateCandidateRequest
	}{
		{"missing name", models.CreateCandidateRequest{Email: "a@example.com"}},
		{"missing email", models.CreateCandidateRequest{Name: "A"}},
		{"bad stage", models.CreateCandidateRequest{Name: "A", Email: "a@example.com", Stage: "limbo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(t, "POST", "/api/candidates", tt.body)
			w := httptest.NewRecorder()
			handler.CreateCandidate(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestListCandidatesFilters(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)
	job := testutil.CreateTestJob(t, s, "Backend Engineer")

	testutil.CreateTestCandidate(t, s, "alice", job.ID)
	testutil.CreateTestCandidate(t, s, "bob", job.ID)
	testutil.CreateTestCandidate(t, s, "alicia", "other-job")

	req := testutil.MakeRequest(t, "GET", "/api/candidates?search=ali&jobId="+job.ID, nil)
	w := httptest.NewRecorder()
	handler.ListCandidates(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CandidatePage
	testutil.AssertJSON(t, w, &resp)
	if resp.Total != 1 || resp.Candidates[0].Name != "alice" {
		t.Errorf("Expected only alice, got %+v", resp.Candidates)
	}
}

func TestGetCandidateNotFound(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)

	req := testutil.MakeRequest(t, "GET", "/api/candidates/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.GetCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateCandidateStageChange(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)
	job := testutil.CreateTestJob(t, s, "Backend Engineer")
	candidate := testutil.CreateTestCandidate(t, s, "priya", job.ID)

	stage := models.StageScreen
	note := "Good intro call"
	req := testutil.MakeRequest(t, "PATCH", "/api/candidates/"+candidate.ID,
		models.CandidatePatch{Stage: &stage, Note: &note})
	req.SetPathValue("id", candidate.ID)
	w := httptest.NewRecorder()
	handler.UpdateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CandidateEnvelope
	testutil.AssertJSON(t, w, &resp)
	if resp.Candidate.Stage != models.StageScreen {
		t.Errorf("Expected stage screen, got %s", resp.Candidate.Stage)
	}

	// The stage change shows up in the timeline endpoint
	timelineReq := testutil.MakeRequest(t, "GET", "/api/candidates/"+candidate.ID+"/timeline", nil)
	timelineReq.SetPathValue("id", candidate.ID)
	tw := httptest.NewRecorder()
	handler.Timeline(tw, timelineReq)

	testutil.AssertStatus(t, tw, http.StatusOK)

	var timeline models.TimelineEnvelope
	testutil.AssertJSON(t, tw, &timeline)
	if len(timeline.Timeline) != 1 {
		t.Fatalf("Expected 1 timeline event, got %d", len(timeline.Timeline))
	}
	if timeline.Timeline[0].Note != note {
		t.Errorf("Expected note %q, got %q", note, timeline.Timeline[0].Note)
	}
}

func TestUpdateCandidateInvalidStage(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)
	job := testutil.CreateTestJob(t, s, "Backend Engineer")
	candidate := testutil.CreateTestCandidate(t, s, "jonas", job.ID)

	bad := "limbo"
	req := testutil.MakeRequest(t, "PATCH", "/api/candidates/"+candidate.ID,
		models.CandidatePatch{Stage: &bad})
	req.SetPathValue("id", candidate.ID)
	w := httptest.NewRecorder()
	handler.UpdateCandidate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestTimelineUnknownCandidateIsEmpty(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(s)

	req := testutil.MakeRequest(t, "GET", "/api/candidates/missing/timeline", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.Timeline(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TimelineEnvelope
	testutil.AssertJSON(t, w, &resp)
	if resp.Timeline == nil || len(resp.Timeline) != 0 {
		t.Errorf("Expected empty timeline array, got %+v", resp.Timeline)
	}
}
