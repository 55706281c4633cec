// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Job status constants
const (
	JobActive   = "active"
	JobArchived = "archived"
)

// Candidate pipeline stage constants
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

// Stages lists every pipeline stage in pipeline order.
var Stages = []string{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

// Question type constants
const (
	QuestionSingle   = "single"
	QuestionMulti    = "multi"
	QuestionText     = "text"
	QuestionLongText = "longtext"
	QuestionNumeric  = "numeric"
	QuestionFile     = "file"
)

// Theme constants
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Request types

type CreateJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

// JobPatch carries a partial job update. Nil fields are left untouched.
type JobPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type ReorderJobRequest struct {
	NewOrder int `json:"newOrder"`
}

type CreateCandidateRequest struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Stage string   `json:"stage"`
	JobID string   `json:"jobId"`
	Tags  []string `json:"tags"`
	Notes string   `json:"notes"`
}

// CandidatePatch carries a partial candidate update. Note is not a field of
// the candidate itself: it annotates the timeline event recorded when the
// patch moves the candidate to a different stage.
type CandidatePatch struct {
	Name  *string   `json:"name,omitempty"`
	Email *string   `json:"email,omitempty"`
	Phone *string   `json:"phone,omitempty"`
	Stage *string   `json:"stage,omitempty"`
	JobID *string   `json:"jobId,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
	Notes *string   `json:"notes,omitempty"`
	Note  *string   `json:"note,omitempty"`
}

type SaveAssessmentRequest struct {
	Title    string              `json:"title"`
	Sections []AssessmentSection `json:"sections"`
}

type SubmitAssessmentRequest struct {
	AssessmentID string         `json:"assessmentId"`
	CandidateID  string         `json:"candidateId"`
	Responses    map[string]any `json:"responses"`
}

// Response types

type JobPage struct {
	Jobs     []Job `json:"jobs"`
	Total    int   `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

type CandidatePage struct {
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
}

type JobEnvelope struct {
	Job Job `json:"job"`
}

type CandidateEnvelope struct {
	Candidate Candidate `json:"candidate"`
}

type TimelineEnvelope struct {
	Timeline []TimelineEvent `json:"timeline"`
}

type AssessmentListEnvelope struct {
	Assessments []Assessment `json:"assessments"`
}

// AssessmentEnvelope wraps a single assessment. Assessment is nil (JSON
// null) when no assessment exists for the requested job.
type AssessmentEnvelope struct {
	Assessment *Assessment `json:"assessment"`
}

type AssessmentResponseEnvelope struct {
	Response AssessmentResponse `json:"response"`
}

type RecentJob struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentCandidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stage     string    `json:"stage"`
	UpdatedAt time.Time `json:"updatedAt"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
}

type DashboardSummary struct {
	TotalJobs          int               `json:"totalJobs"`
	ActiveJobs         int               `json:"activeJobs"`
	ArchivedJobs       int               `json:"archivedJobs"`
	TotalCandidates    int               `json:"totalCandidates"`
	AssessmentsCount   int               `json:"assessmentsCount"`
	CandidatesPerStage map[string]int    `json:"candidatesPerStage"`
	RecentJobs         []RecentJob       `json:"recentJobs"`
	RecentCandidates   []RecentCandidate `json:"recentCandidates"`
}

// Domain types

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Stage     string    `json:"stage"`
	JobID     string    `json:"jobId"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TimelineEvent struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	FromStage   string    `json:"fromStage"`
	ToStage     string    `json:"toStage"`
	Note        string    `json:"note,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type Assessment struct {
	ID        string              `json:"id"`
	JobID     string              `json:"jobId"`
	Title     string              `json:"title"`
	Sections  []AssessmentSection `json:"sections"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type AssessmentSection struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// ConditionalLogic gates a question on another question's answer. DependsOn
// references a question id within the same assessment; a dangling reference
// simply means the condition is never satisfied.
type ConditionalLogic struct {
	DependsOn     string `json:"dependsOn"`
	ExpectedValue string `json:"expectedValue"`
}

type Question struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	Question         string            `json:"question"`
	Required         bool              `json:"required"`
	Options          []string          `json:"options,omitempty"`
	MinValue         *float64          `json:"minValue,omitempty"`
	MaxValue         *float64          `json:"maxValue,omitempty"`
	MaxLength        *int              `json:"maxLength,omitempty"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic,omitempty"`
}

type AssessmentResponse struct {
	ID           string         `json:"id"`
	AssessmentID string         `json:"assessmentId"`
	CandidateID  string         `json:"candidateId"`
	Responses    map[string]any `json:"responses"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}

type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Avatar      string    `json:"avatar"`
	MemberSince time.Time `json:"memberSince"`
}

type Settings struct {
	ID                 string `json:"id"`
	EmailNotifications bool   `json:"emailNotifications"`
	InAppNotifications bool   `json:"inAppNotifications"`
	Theme              string `json:"theme"`
}

type NotificationItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
