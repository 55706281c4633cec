// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed fills an empty store with realistic demo data: a curated set
of IT job postings, faker-generated candidates spread across the pipeline
stages, and a few sample assessments.

Run is idempotent - it backs off as soon as any job exists. A force run
clears the seeded tables first but never touches profile, settings, or
notifications.

Seeded records use predictable ids (job-1, candidate-1, assessment-1, ...)
so demos and API examples can reference them directly.
*/
package seed
