// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/adareyes/talentflow/models"
)

func TestCreateCandidateDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCandidate(ctx, models.CreateCandidateRequest{
		Name:  "Mina Okafor",
		Email: "mina@example.com",
		JobID: "job-1",
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	if c.Stage != models.StageApplied {
		t.Errorf("Expected stage to default to applied, got %s", c.Stage)
	}
	if c.Tags == nil || len(c.Tags) != 0 {
		t.Errorf("Expected empty tags slice, got %v", c.Tags)
	}

	// A dangling job reference is accepted
	dangling, err := s.CreateCandidate(ctx, models.CreateCandidateRequest{
		Name:  "Theo Brandt",
		Email: "theo@example.com",
		JobID: "no-such-job",
	})
	if err != nil {
		t.Fatalf("Expected dangling jobId to be accepted, got %v", err)
	}
	if dangling.JobID != "no-such-job" {
		t.Errorf("Expected jobId to be stored as given, got %s", dangling.JobID)
	}
}

func TestUpdateCandidateStageChangeRecordsTimeline(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCandidate(ctx, models.CreateCandidateRequest{
		Name:  "Priya Shah",
		Email: "priya@example.com",
		JobID: "job-1",
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	stage := models.StageScreen
	note := "Strong phone screen"
	updated, err := s.UpdateCandidate(ctx, c.ID, models.CandidatePatch{Stage: &stage, Note: &note})
	if err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}
	if updated.Stage != models.StageScreen {
		t.Errorf("Expected stage screen, got %s", updated.Stage)
	}

	events, err := s.Timeline(ctx, c.ID)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected exactly 1 timeline event, got %d", len(events))
	}
	ev := events[0]
	if ev.FromStage != models.StageApplied || ev.ToStage != models.StageScreen {
		t.Errorf("Expected applied->screen, got %s->%s", ev.FromStage, ev.ToStage)
	}
	if ev.Note != note {
		t.Errorf("Expected note %q, got %q", note, ev.Note)
	}
	if !ev.Timestamp.Equal(updated.UpdatedAt) {
		t.Errorf("Expected event timestamp to match updatedAt: %v vs %v", ev.Timestamp, updated.UpdatedAt)
	}

	// A second move appends a second event
	tech := models.StageTech
	if _, err := s.UpdateCandidate(ctx, c.ID, models.CandidatePatch{Stage: &tech}); err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}
	events, err = s.Timeline(ctx, c.ID)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 timeline events, got %d", len(events))
	}
	if events[1].FromStage != models.StageScreen || events[1].ToStage != models.StageTech {
		t.Errorf("Expected screen->tech, got %s->%s", events[1].FromStage, events[1].ToStage)
	}
}

func TestUpdateCandidateNoTimelineWithoutStageChange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCandidate(ctx, models.CreateCandidateRequest{
		Name:  "Jonas Weber",
		Email: "jonas@example.com",
		JobID: "job-2",
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	// Patch without a stage
	name := "Jonas M. Weber"
	if _, err := s.UpdateCandidate(ctx, c.ID, models.CandidatePatch{Name: &name}); err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}

	// Patch with the same stage
	same := models.StageApplied
	if _, err := s.UpdateCandidate(ctx, c.ID, models.CandidatePatch{Stage: &same}); err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}

	events, err := s.Timeline(ctx, c.ID)
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected no timeline events, got %d", len(events))
	}
}

func TestUpdateCandidateNotFound(t *testing.T) {
	s := newTestStore(t)

	stage := models.StageOffer
	_, err := s.UpdateCandidate(context.Background(), "missing", models.CandidatePatch{Stage: &stage})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListCandidatesFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := []struct {
		name, email, stage, jobID string
	}{
		{"Ada Laurent", "ada@example.com", models.StageApplied, "job-1"},
		{"Bram Laurent", "bram@corp.test", models.StageScreen, "job-1"},
		{"Cleo Ito", "cleo@example.com", models.StageScreen, "job-2"},
		{"Dev Anand", "dev@corp.test", models.StageHired, "job-2"},
	}
	for _, sp := range seed {
		if _, err := s.CreateCandidate(ctx, models.CreateCandidateRequest{
			Name: sp.name, Email: sp.email, Stage: sp.stage, JobID: sp.jobID,
		}); err != nil {
			t.Fatalf("CreateCandidate failed: %v", err)
		}
	}

	// Search matches name or email
	page, err := s.ListCandidates(ctx, ListCandidatesOptions{Search: "laurent"})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Expected 2 name matches, got %d", page.Total)
	}

	page, err = s.ListCandidates(ctx, ListCandidatesOptions{Search: "corp.test"})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Expected 2 email matches, got %d", page.Total)
	}

	// Stage and job filters intersect with search
	page, err = s.ListCandidates(ctx, ListCandidatesOptions{
		Search: "laurent",
		Stage:  models.StageScreen,
		JobID:  "job-1",
	})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if page.Total != 1 || page.Candidates[0].Name != "Bram Laurent" {
		t.Errorf("Expected only Bram Laurent, got %+v", page.Candidates)
	}

	// No filters returns everyone
	page, err = s.ListCandidates(ctx, ListCandidatesOptions{})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if page.Total != 4 {
		t.Errorf("Expected 4 candidates, got %d", page.Total)
	}
	if page.PageSize != DefaultCandidatePageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultCandidatePageSize, page.PageSize)
	}
}

func TestTimelineUnknownCandidate(t *testing.T) {
	s := newTestStore(t)

	events, err := s.Timeline(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected empty timeline, got %d events", len(events))
	}
}
