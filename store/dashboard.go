// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adareyes/talentflow/models"
)

// Unknown-job placeholder used when a candidate references a job that no
// longer exists (or never did).
const unknownJobTitle = "Unknown Job"

// DashboardSummary aggregates the store into the hiring dashboard's
// numbers: job and candidate totals, per-stage counts, and the five most
// recently created jobs / most recently updated candidates.
func (s *Store) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{
		CandidatesPerStage: map[string]int{},
		RecentJobs:         []models.RecentJob{},
		RecentCandidates:   []models.RecentCandidate{},
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(CASE WHEN status = 'active' THEN 1 END),
		       COUNT(CASE WHEN status = 'archived' THEN 1 END)
		FROM jobs
	`).Scan(&summary.TotalJobs, &summary.ActiveJobs, &summary.ArchivedJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&summary.AssessmentsCount); err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT stage, COUNT(*) FROM candidates GROUP BY stage")
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates per stage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count: %w", err)
		}
		summary.CandidatesPerStage[stage] = count
		summary.TotalCandidates += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stage counts: %w", err)
	}

	jobRows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at FROM jobs ORDER BY created_at DESC, id LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent jobs: %w", err)
	}
	defer jobRows.Close()
	for jobRows.Next() {
		var rj models.RecentJob
		var created int64
		if err := jobRows.Scan(&rj.ID, &rj.Title, &created); err != nil {
			return nil, fmt.Errorf("failed to scan recent job: %w", err)
		}
		rj.CreatedAt = fromNanos(created)
		summary.RecentJobs = append(summary.RecentJobs, rj)
	}
	if err := jobRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent jobs: %w", err)
	}

	candRows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.stage, c.updated_at, c.job_id, j.title
		FROM candidates c LEFT JOIN jobs j ON j.id = c.job_id
		ORDER BY c.updated_at DESC, c.id LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent candidates: %w", err)
	}
	defer candRows.Close()
	for candRows.Next() {
		var rc models.RecentCandidate
		var updated int64
		var jobTitle sql.NullString
		if err := candRows.Scan(&rc.ID, &rc.Name, &rc.Stage, &updated, &rc.JobID, &jobTitle); err != nil {
			return nil, fmt.Errorf("failed to scan recent candidate: %w", err)
		}
		rc.UpdatedAt = fromNanos(updated)
		rc.JobTitle = unknownJobTitle
		if jobTitle.Valid {
			rc.JobTitle = jobTitle.String
		}
		summary.RecentCandidates = append(summary.RecentCandidates, rc)
	}
	if err := candRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent candidates: %w", err)
	}

	return summary, nil
}
