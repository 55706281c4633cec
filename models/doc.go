// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for TalentFlow.

# Request Types

Types for parsing incoming JSON:

  - CreateJobRequest: title, description, status, tags
  - JobPatch: partial job update (nil fields untouched)
  - ReorderJobRequest: newOrder
  - CreateCandidateRequest: name, email, phone, stage, jobId, tags, notes
  - CandidatePatch: partial candidate update; its optional note annotates
    the timeline event recorded on a stage change
  - SaveAssessmentRequest: title, sections (upsert keyed by jobId)
  - SubmitAssessmentRequest: assessmentId, candidateId, responses

# Response Types

List operations return page shapes (JobPage, CandidatePage) with total,
page, and pageSize alongside the page slice. Single-entity operations
return envelope types (JobEnvelope, CandidateEnvelope, AssessmentEnvelope)
so the JSON body matches the wire contract: {"job": ...}, {"candidate": ...}.
AssessmentEnvelope.Assessment is nil when no assessment exists for a job,
which serializes as {"assessment": null}.

# Domain Types

  - Job: a posting with derived slug and mutable display order
  - Candidate: an applicant moving through pipeline stages
  - TimelineEvent: one stage transition, recorded automatically
  - Assessment: at most one per job, holding sections of questions
  - Question: typed, with per-type optional fields and conditional logic
  - Profile, Settings, NotificationItem: local-only account data

# Constants

Job statuses:

	JobActive   = "active"
	JobArchived = "archived"

Pipeline stages, in pipeline order:

	applied → screen → tech → offer → hired / rejected

Question types:

	single, multi, text, longtext, numeric, file
*/
package models
