// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adareyes/talentflow/models"
)

func TestDashboardSummaryEmptyStore(t *testing.T) {
	s := newTestStore(t)

	summary, err := s.DashboardSummary(context.Background())
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}
	if summary.TotalJobs != 0 || summary.TotalCandidates != 0 || summary.AssessmentsCount != 0 {
		t.Errorf("Expected zeroed summary, got %+v", summary)
	}
	if summary.RecentJobs == nil || summary.RecentCandidates == nil || summary.CandidatesPerStage == nil {
		t.Error("Expected empty collections, not nil")
	}
}

func TestDashboardSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	jobs := []models.Job{}
	for i := 1; i <= 7; i++ {
		status := models.JobActive
		if i%3 == 0 {
			status = models.JobArchived
		}
		jobs = append(jobs, models.Job{
			ID:        fmt.Sprintf("job-%d", i),
			Title:     fmt.Sprintf("Role %d", i),
			Slug:      fmt.Sprintf("role-%d", i),
			Status:    status,
			Tags:      []string{},
			Order:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	if err := s.BulkAddJobs(ctx, jobs); err != nil {
		t.Fatalf("BulkAddJobs failed: %v", err)
	}

	candidates := []models.Candidate{
		{ID: "candidate-1", Name: "One", Email: "one@example.com", Stage: models.StageApplied, JobID: "job-1", Tags: []string{}},
		{ID: "candidate-2", Name: "Two", Email: "two@example.com", Stage: models.StageApplied, JobID: "job-2", Tags: []string{}},
		{ID: "candidate-3", Name: "Three", Email: "three@example.com", Stage: models.StageScreen, JobID: "job-1", Tags: []string{}},
		{ID: "candidate-4", Name: "Four", Email: "four@example.com", Stage: models.StageHired, JobID: "orphaned-job", Tags: []string{}},
	}
	for i := range candidates {
		candidates[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		candidates[i].UpdatedAt = base.Add(time.Duration(i) * time.Minute)
	}
	if err := s.BulkAddCandidates(ctx, candidates); err != nil {
		t.Fatalf("BulkAddCandidates failed: %v", err)
	}

	if _, err := s.SaveAssessment(ctx, "job-1", models.SaveAssessmentRequest{Title: "Screen"}); err != nil {
		t.Fatalf("SaveAssessment failed: %v", err)
	}

	summary, err := s.DashboardSummary(ctx)
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}

	if summary.TotalJobs != 7 || summary.ActiveJobs != 5 || summary.ArchivedJobs != 2 {
		t.Errorf("Job counts wrong: %+v", summary)
	}
	if summary.TotalCandidates != 4 {
		t.Errorf("Expected 4 candidates, got %d", summary.TotalCandidates)
	}
	if summary.AssessmentsCount != 1 {
		t.Errorf("Expected 1 assessment, got %d", summary.AssessmentsCount)
	}
	if summary.CandidatesPerStage[models.StageApplied] != 2 ||
		summary.CandidatesPerStage[models.StageScreen] != 1 ||
		summary.CandidatesPerStage[models.StageHired] != 1 {
		t.Errorf("Stage counts wrong: %v", summary.CandidatesPerStage)
	}

	// Five most recently created jobs, newest first
	if len(summary.RecentJobs) != 5 {
		t.Fatalf("Expected 5 recent jobs, got %d", len(summary.RecentJobs))
	}
	if summary.RecentJobs[0].ID != "job-7" || summary.RecentJobs[4].ID != "job-3" {
		t.Errorf("Recent jobs out of order: %+v", summary.RecentJobs)
	}

	// Most recently updated candidates first, with job titles joined in
	if len(summary.RecentCandidates) != 4 {
		t.Fatalf("Expected 4 recent candidates, got %d", len(summary.RecentCandidates))
	}
	if summary.RecentCandidates[0].ID != "candidate-4" {
		t.Errorf("Expected most recently updated first, got %s", summary.RecentCandidates[0].ID)
	}
	if summary.RecentCandidates[0].JobTitle != "Unknown Job" {
		t.Errorf("Expected Unknown Job for dangling reference, got %q", summary.RecentCandidates[0].JobTitle)
	}
	if summary.RecentCandidates[1].JobTitle != "Role 1" {
		t.Errorf("Expected joined job title, got %q", summary.RecentCandidates[1].JobTitle)
	}
}
