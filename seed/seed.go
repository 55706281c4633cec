// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dustin/go-humanize"

	"github.com/adareyes/talentflow/ident"
	"github.com/adareyes/talentflow/models"
	"github.com/adareyes/talentflow/store"
)

// Default volumes
const (
	DefaultJobs        = 20
	DefaultCandidates  = 1000
	DefaultAssessments = 3
)

// Config controls a seeding run. Zero counts fall back to the defaults;
// Force clears previously seeded data first.
type Config struct {
	Force       bool
	Jobs        int
	Candidates  int
	Assessments int
}

func (c *Config) normalize() {
	if c.Jobs < 1 {
		c.Jobs = DefaultJobs
	}
	if c.Candidates < 1 {
		c.Candidates = DefaultCandidates
	}
	if c.Assessments < 1 {
		c.Assessments = DefaultAssessments
	}
	if c.Assessments > c.Jobs {
		c.Assessments = c.Jobs
	}
}

// Run populates the store with demo data. It is a no-op when jobs already
// exist, unless cfg.Force clears them first. Profile, settings, and
// notifications are never touched.
func Run(ctx context.Context, st *store.Store, cfg Config) error {
	cfg.normalize()

	if cfg.Force {
		slog.Info("force reseed: clearing existing data")
		if err := st.ClearSeedTables(ctx); err != nil {
			return fmt.Errorf("failed to clear seed tables: %w", err)
		}
	}

	existing, err := st.CountJobs(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		slog.Info("database already seeded", "jobs", existing)
		return nil
	}

	slog.Info("seeding database",
		"jobs", cfg.Jobs,
		"candidates", humanize.Comma(int64(cfg.Candidates)),
		"assessments", cfg.Assessments)
	started := time.Now()

	faker := gofakeit.New(0)
	now := time.Now().UTC()

	jobs := buildJobs(faker, now, cfg.Jobs)
	if err := st.BulkAddJobs(ctx, jobs); err != nil {
		return err
	}

	if err := st.BulkAddCandidates(ctx, buildCandidates(faker, now, cfg.Candidates, cfg.Jobs)); err != nil {
		return err
	}

	if err := st.BulkAddAssessments(ctx, buildAssessments(now, cfg.Assessments, jobs)); err != nil {
		return err
	}

	slog.Info("database seeded",
		"candidates", humanize.Comma(int64(cfg.Candidates)),
		"took", time.Since(started).Round(time.Millisecond))
	return nil
}

func buildJobs(faker *gofakeit.Faker, now time.Time, count int) []models.Job {
	jobs := make([]models.Job, 0, count)
	for i := 0; i < count; i++ {
		title := faker.JobTitle()
		if i < len(jobTitles) {
			title = jobTitles[i]
		}

		var tags []string
		if i < len(jobTags) {
			tags = jobTags[i]
		} else {
			tags = pickSome(faker, fallbackJobTags, 1, 3)
		}

		jobs = append(jobs, models.Job{
			ID:          fmt.Sprintf("job-%d", i+1),
			Title:       title,
			Slug:        ident.Slugify(title),
			Description: faker.Paragraph(2, 4, 12, "\n\n"),
			// Roughly three active jobs for every archived one
			Status:    faker.RandomString([]string{models.JobActive, models.JobActive, models.JobActive, models.JobArchived}),
			Tags:      tags,
			Order:     i + 1,
			CreatedAt: faker.DateRange(now.AddDate(-1, 0, 0), now),
			UpdatedAt: now,
		})
	}
	return jobs
}

func buildCandidates(faker *gofakeit.Faker, now time.Time, count, jobCount int) []models.Candidate {
	candidates := make([]models.Candidate, 0, count)
	for i := 0; i < count; i++ {
		candidates = append(candidates, models.Candidate{
			ID:        fmt.Sprintf("candidate-%d", i+1),
			Name:      faker.Name(),
			Email:     faker.Email(),
			Phone:     faker.Phone(),
			Stage:     faker.RandomString(models.Stages),
			JobID:     fmt.Sprintf("job-%d", faker.Number(1, jobCount)),
			Tags:      pickSome(faker, candidateTags, 0, 3),
			Notes:     faker.Paragraph(1, 3, 10, " "),
			CreatedAt: faker.DateRange(now.AddDate(-1, 0, 0), now),
			UpdatedAt: now,
		})
	}
	return candidates
}

func buildAssessments(now time.Time, count int, jobs []models.Job) []models.Assessment {
	assessments := make([]models.Assessment, 0, count)
	for i := 0; i < count; i++ {
		assessments = append(assessments, models.Assessment{
			ID:        fmt.Sprintf("assessment-%d", i+1),
			JobID:     jobs[i].ID,
			Title:     jobs[i].Title + " Assessment",
			Sections:  assessmentSections(i),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return assessments
}

// pickSome returns between min and max distinct elements from the pool.
func pickSome(faker *gofakeit.Faker, pool []string, min, max int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	faker.ShuffleStrings(shuffled)

	n := faker.Number(min, max)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
