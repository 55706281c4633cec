// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/adareyes/talentflow/ident"
	"github.com/adareyes/talentflow/models"
)

const assessmentColumns = "id, job_id, title, sections, created_at, updated_at"

func scanAssessment(row interface{ Scan(...any) error }) (models.Assessment, error) {
	var a models.Assessment
	var sections string
	var created, updated int64

	err := row.Scan(&a.ID, &a.JobID, &a.Title, &sections, &created, &updated)
	if err != nil {
		return models.Assessment{}, err
	}

	a.Sections = []models.AssessmentSection{}
	if sections != "" {
		if err := json.Unmarshal([]byte(sections), &a.Sections); err != nil {
			return models.Assessment{}, fmt.Errorf("failed to decode sections: %w", err)
		}
	}
	a.CreatedAt = fromNanos(created)
	a.UpdatedAt = fromNanos(updated)
	return a, nil
}

// ListAssessments returns every assessment, oldest first.
func (s *Store) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+assessmentColumns+" FROM assessments ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	assessments := []models.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}
	return assessments, nil
}

// AssessmentByJob retrieves the assessment for a job. Returns (nil, nil)
// when the job has none: an absent assessment is a normal result, not a
// fault.
func (s *Store) AssessmentByJob(ctx context.Context, jobID string) (*models.Assessment, error) {
	row := s.db.QueryRowContext(ctx, s.q(
		"SELECT "+assessmentColumns+" FROM assessments WHERE job_id = ? ORDER BY created_at, id LIMIT 1"), jobID)

	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}
	return &a, nil
}

// SaveAssessment upserts the assessment keyed by jobID: an existing record
// keeps its id and createdAt and gets the new title, sections, and
// updatedAt; otherwise a fresh record is created. Upserting by job keeps at
// most one assessment per job.
func (s *Store) SaveAssessment(ctx context.Context, jobID string, req models.SaveAssessmentRequest) (*models.Assessment, error) {
	sections := req.Sections
	if sections == nil {
		sections = []models.AssessmentSection{}
	}
	encoded, err := encodeJSON(sections)
	if err != nil {
		return nil, err
	}

	existing, err := s.AssessmentByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if existing != nil {
		_, err = s.db.ExecContext(ctx, s.q(`
			UPDATE assessments SET title = ?, sections = ?, updated_at = ? WHERE id = ?
		`), req.Title, encoded, toNanos(now), existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update assessment: %w", err)
		}

		existing.Title = req.Title
		existing.Sections = sections
		existing.UpdatedAt = now
		return existing, nil
	}

	a := models.Assessment{
		ID:        ident.NewID(),
		JobID:     jobID,
		Title:     req.Title,
		Sections:  sections,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO assessments (id, job_id, title, sections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), a.ID, a.JobID, a.Title, encoded, toNanos(now), toNanos(now))
	if err != nil {
		return nil, fmt.Errorf("failed to insert assessment: %w", err)
	}
	return &a, nil
}

// AddAssessmentResponse records one submitted response set for an
// assessment.
func (s *Store) AddAssessmentResponse(ctx context.Context, req models.SubmitAssessmentRequest) (*models.AssessmentResponse, error) {
	responses := req.Responses
	if responses == nil {
		responses = map[string]any{}
	}
	encoded, err := encodeJSON(responses)
	if err != nil {
		return nil, err
	}

	resp := models.AssessmentResponse{
		ID:           ident.NewID(),
		AssessmentID: req.AssessmentID,
		CandidateID:  req.CandidateID,
		Responses:    responses,
		SubmittedAt:  time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO assessment_responses (id, assessment_id, candidate_id, responses, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`), resp.ID, resp.AssessmentID, resp.CandidateID, encoded, toNanos(resp.SubmittedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to insert assessment response: %w", err)
	}
	return &resp, nil
}

// ResponsesByAssessment returns every submitted response set for an
// assessment, oldest first.
func (s *Store) ResponsesByAssessment(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT id, assessment_id, candidate_id, responses, submitted_at
		FROM assessment_responses WHERE assessment_id = ? ORDER BY submitted_at, id
	`), assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment responses: %w", err)
	}
	defer rows.Close()

	out := []models.AssessmentResponse{}
	for rows.Next() {
		var resp models.AssessmentResponse
		var encoded string
		var submitted int64
		if err := rows.Scan(&resp.ID, &resp.AssessmentID, &resp.CandidateID, &encoded, &submitted); err != nil {
			return nil, fmt.Errorf("failed to scan assessment response: %w", err)
		}
		resp.Responses = map[string]any{}
		if encoded != "" {
			if err := json.Unmarshal([]byte(encoded), &resp.Responses); err != nil {
				return nil, fmt.Errorf("failed to decode responses: %w", err)
			}
		}
		resp.SubmittedAt = fromNanos(submitted)
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessment responses: %w", err)
	}
	return out, nil
}
