// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adareyes/talentflow/ident"
	"github.com/adareyes/talentflow/models"
)

// ListCandidatesOptions filters and paginates a candidate listing. Search
// matches name or email; stage and jobID are exact filters.
type ListCandidatesOptions struct {
	Search   string
	Stage    string
	JobID    string
	Page     int
	PageSize int
}

func (o *ListCandidatesOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultCandidatePageSize
	}
}

const candidateColumns = "id, name, email, phone, stage, job_id, tags, notes, created_at, updated_at"

func scanCandidate(row interface{ Scan(...any) error }) (models.Candidate, error) {
	var c models.Candidate
	var tags string
	var created, updated int64

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Stage, &c.JobID,
		&tags, &c.Notes, &created, &updated)
	if err != nil {
		return models.Candidate{}, err
	}

	c.Tags, err = decodeStrings(tags)
	if err != nil {
		return models.Candidate{}, err
	}
	c.CreatedAt = fromNanos(created)
	c.UpdatedAt = fromNanos(updated)
	return c, nil
}

// CreateCandidate inserts a new candidate, defaulting the stage to applied.
// The job reference is not validated; a dangling jobId is allowed.
func (s *Store) CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	now := time.Now().UTC()
	c := models.Candidate{
		ID:        ident.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Stage:     req.Stage,
		JobID:     req.JobID,
		Tags:      req.Tags,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Stage == "" {
		c.Stage = models.StageApplied
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if err := s.insertCandidate(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) insertCandidate(ctx context.Context, c models.Candidate) error {
	tags, err := encodeJSON(c.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO candidates (id, name, email, phone, stage, job_id, tags, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), c.ID, c.Name, c.Email, c.Phone, c.Stage, c.JobID, tags, c.Notes,
		toNanos(c.CreatedAt), toNanos(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

// GetCandidate retrieves a candidate by id. Returns ErrNotFound when no
// record matches.
func (s *Store) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	row := s.db.QueryRowContext(ctx, s.q("SELECT "+candidateColumns+" FROM candidates WHERE id = ?"), id)

	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate: %w", err)
	}
	return &c, nil
}

// UpdateCandidate merges the patch into an existing candidate and refreshes
// updatedAt. When the patch moves the candidate to a different stage,
// exactly one timeline event is recorded (annotated with patch.Note, if
// set). No event is recorded when the stage is omitted or unchanged.
func (s *Store) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	c, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	priorStage := c.Stage

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Stage != nil {
		c.Stage = *patch.Stage
	}
	if patch.JobID != nil {
		c.JobID = *patch.JobID
	}
	if patch.Tags != nil {
		c.Tags = *patch.Tags
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	now := time.Now().UTC()
	c.UpdatedAt = now

	tags, err := encodeJSON(c.Tags)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		UPDATE candidates SET name = ?, email = ?, phone = ?, stage = ?, job_id = ?, tags = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`), c.Name, c.Email, c.Phone, c.Stage, c.JobID, tags, c.Notes, toNanos(now), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	if patch.Stage != nil && *patch.Stage != priorStage {
		event := models.TimelineEvent{
			ID:          ident.NewID(),
			CandidateID: id,
			FromStage:   priorStage,
			ToStage:     *patch.Stage,
			Timestamp:   now,
		}
		if patch.Note != nil {
			event.Note = *patch.Note
		}

		_, err = s.db.ExecContext(ctx, s.q(`
			INSERT INTO timelines (id, candidate_id, from_stage, to_stage, note, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`), event.ID, event.CandidateID, event.FromStage, event.ToStage, event.Note, toNanos(event.Timestamp))
		if err != nil {
			return nil, fmt.Errorf("failed to record stage transition: %w", err)
		}
	}

	return c, nil
}

// ListCandidates returns one page of candidates, filtered then paginated.
// The sequence is ordered by creation time (id as tiebreaker) so pages are
// stable.
func (s *Store) ListCandidates(ctx context.Context, opts ListCandidatesOptions) (*models.CandidatePage, error) {
	opts.normalize()

	where, args := whereClause(
		nameOrEmailSearch{Search: opts.Search},
		fieldEquals{Column: "stage", Value: opts.Stage},
		fieldEquals{Column: "job_id", Value: opts.JobID},
	)

	rows, err := s.db.QueryContext(ctx, s.q(
		"SELECT "+candidateColumns+" FROM candidates"+where+" ORDER BY created_at, id"), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	total := len(candidates)
	return &models.CandidatePage{
		Candidates: pageSlice(candidates, opts.Page, opts.PageSize),
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
	}, nil
}

// Timeline returns every stage-transition event recorded for a candidate,
// oldest first. An unknown candidate yields an empty timeline, not an
// error.
func (s *Store) Timeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT id, candidate_id, from_stage, to_stage, note, timestamp
		FROM timelines WHERE candidate_id = ? ORDER BY timestamp, id
	`), candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	defer rows.Close()

	events := []models.TimelineEvent{}
	for rows.Next() {
		var ev models.TimelineEvent
		var ts int64
		if err := rows.Scan(&ev.ID, &ev.CandidateID, &ev.FromStage, &ev.ToStage, &ev.Note, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event: %w", err)
		}
		ev.Timestamp = fromNanos(ts)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}
	return events, nil
}
