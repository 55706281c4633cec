// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adareyes/talentflow/ident"
	"github.com/adareyes/talentflow/models"
)

// Job sort keys
const (
	SortOrder  = "order"
	SortTitle  = "title"
	SortStatus = "status"
)

// Default page sizes
const (
	DefaultJobPageSize       = 10
	DefaultCandidatePageSize = 50
)

// ListJobsOptions filters, sorts, and paginates a job listing. Zero values
// mean "no filter" / defaults (page 1, page size 10, sort by order).
type ListJobsOptions struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

func (o *ListJobsOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultJobPageSize
	}
	if o.Sort != SortTitle && o.Sort != SortStatus {
		o.Sort = SortOrder
	}
}

const jobColumns = "id, title, slug, description, status, tags, sort_order, created_at, updated_at"

func scanJob(row interface{ Scan(...any) error }) (models.Job, error) {
	var j models.Job
	var tags string
	var created, updated int64

	err := row.Scan(&j.ID, &j.Title, &j.Slug, &j.Description, &j.Status,
		&tags, &j.Order, &created, &updated)
	if err != nil {
		return models.Job{}, err
	}

	j.Tags, err = decodeStrings(tags)
	if err != nil {
		return models.Job{}, err
	}
	j.CreatedAt = fromNanos(created)
	j.UpdatedAt = fromNanos(updated)
	return j, nil
}

// CreateJob inserts a new job: fresh id, slug derived from the title,
// status defaulting to active, and order set to the current job count + 1.
func (s *Store) CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error) {
	count, err := s.CountJobs(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := models.Job{
		ID:          ident.NewID(),
		Title:       req.Title,
		Slug:        ident.Slugify(req.Title),
		Description: req.Description,
		Status:      req.Status,
		Tags:        req.Tags,
		Order:       count + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if job.Status == "" {
		job.Status = models.JobActive
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	if err := s.insertJob(ctx, job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Store) insertJob(ctx context.Context, job models.Job) error {
	tags, err := encodeJSON(job.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO jobs (id, title, slug, description, status, tags, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), job.ID, job.Title, job.Slug, job.Description, job.Status, tags,
		job.Order, toNanos(job.CreatedAt), toNanos(job.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by id. Returns ErrNotFound when no record matches.
func (s *Store) GetJob(ctx context.Context, id string) (*models.Job, error) {
	row := s.db.QueryRowContext(ctx, s.q("SELECT "+jobColumns+" FROM jobs WHERE id = ?"), id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query job: %w", err)
	}
	return &job, nil
}

// UpdateJob merges the patch into an existing job and refreshes updatedAt.
// The slug is not re-derived when the title changes.
func (s *Store) UpdateJob(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.Tags != nil {
		job.Tags = *patch.Tags
	}
	job.UpdatedAt = time.Now().UTC()

	tags, err := encodeJSON(job.Tags)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		UPDATE jobs SET title = ?, description = ?, status = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`), job.Title, job.Description, job.Status, tags, toNanos(job.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// ReorderJob sets the job's order to the given value and refreshes
// updatedAt. Other jobs' order values are not renormalized; duplicates and
// gaps are allowed.
func (s *Store) ReorderJob(ctx context.Context, id string, newOrder int) (*models.Job, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE jobs SET sort_order = ?, updated_at = ? WHERE id = ?
	`), newOrder, toNanos(time.Now().UTC()), id)
	if err != nil {
		return nil, fmt.Errorf("failed to reorder job: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to reorder job: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetJob(ctx, id)
}

// ListJobs returns one page of jobs: filtered, then sorted, then paginated.
// Total counts the matches before pagination.
func (s *Store) ListJobs(ctx context.Context, opts ListJobsOptions) (*models.JobPage, error) {
	opts.normalize()

	where, args := whereClause(
		titleSearch{Search: opts.Search},
		fieldEqualsFold{Column: "status", Value: opts.Status},
	)

	rows, err := s.db.QueryContext(ctx, s.q("SELECT "+jobColumns+" FROM jobs"+where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	sortJobs(jobs, opts.Sort)

	total := len(jobs)
	return &models.JobPage{
		Jobs:     pageSlice(jobs, opts.Page, opts.PageSize),
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

// sortJobs orders the slice by the requested key. Title and status use
// locale-aware comparison; ties fall back to the order field so pagination
// stays stable.
func sortJobs(jobs []models.Job, key string) {
	switch key {
	case SortTitle:
		coll := collate.New(language.English)
		sort.SliceStable(jobs, func(i, j int) bool {
			if c := coll.CompareString(jobs[i].Title, jobs[j].Title); c != 0 {
				return c < 0
			}
			return jobs[i].Order < jobs[j].Order
		})
	case SortStatus:
		coll := collate.New(language.English)
		sort.SliceStable(jobs, func(i, j int) bool {
			if c := coll.CompareString(jobs[i].Status, jobs[j].Status); c != 0 {
				return c < 0
			}
			return jobs[i].Order < jobs[j].Order
		})
	default:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Order < jobs[j].Order
		})
	}
}

// pageSlice returns page (1-based) of size pageSize, empty past the end.
// Callers normalize page and pageSize to at least 1.
func pageSlice[T any](items []T, page, pageSize int) []T {
	// (page-1)*pageSize can overflow for absurd page numbers; any page
	// whose start lands past the end is empty, so check before multiplying.
	if page-1 > len(items)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// CountJobs returns the number of jobs in the store.
func (s *Store) CountJobs(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
