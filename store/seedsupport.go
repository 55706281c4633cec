// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/adareyes/talentflow/models"
)

// ClearSeedTables empties the tables the seeder owns: jobs, candidates,
// timelines, assessments, and assessment responses. Profile, settings, and
// notifications are left alone so a reseed does not wipe account state.
func (s *Store) ClearSeedTables(ctx context.Context) error {
	for _, table := range []string{"jobs", "candidates", "timelines", "assessments", "assessment_responses"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// BulkAddJobs inserts pre-built jobs in a single transaction.
func (s *Store) BulkAddJobs(ctx context.Context, jobs []models.Job) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.q(`
		INSERT INTO jobs (id, title, slug, description, status, tags, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare job insert: %w", err)
	}
	defer stmt.Close()

	for _, job := range jobs {
		tags, err := encodeJSON(job.Tags)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, job.ID, job.Title, job.Slug, job.Description,
			job.Status, tags, job.Order, toNanos(job.CreatedAt), toNanos(job.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert job %s: %w", job.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit jobs: %w", err)
	}
	return nil
}

// BulkAddCandidates inserts pre-built candidates in a single transaction.
func (s *Store) BulkAddCandidates(ctx context.Context, candidates []models.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.q(`
		INSERT INTO candidates (id, name, email, phone, stage, job_id, tags, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare candidate insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range candidates {
		tags, err := encodeJSON(c.Tags)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, c.ID, c.Name, c.Email, c.Phone, c.Stage,
			c.JobID, tags, c.Notes, toNanos(c.CreatedAt), toNanos(c.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert candidate %s: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit candidates: %w", err)
	}
	return nil
}

// BulkAddAssessments inserts pre-built assessments in a single transaction.
func (s *Store) BulkAddAssessments(ctx context.Context, assessments []models.Assessment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.q(`
		INSERT INTO assessments (id, job_id, title, sections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare assessment insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range assessments {
		sections, err := encodeJSON(a.Sections)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, a.ID, a.JobID, a.Title, sections,
			toNanos(a.CreatedAt), toNanos(a.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert assessment %s: %w", a.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assessments: %w", err)
	}
	return nil
}

// CountCandidates returns the number of candidates in the store.
func (s *Store) CountCandidates(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM candidates").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}
