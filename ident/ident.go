// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh unique identifier for a runtime-created entity.
// Seeded entities use readable prefixed ids ("job-1") instead; those are
// assigned by the seed loader, not here.
func NewID() string {
	return uuid.NewString()
}

// Slugify derives a URL-safe slug from a job title: lowercased, with
// internal whitespace runs collapsed to single hyphens.
//
//	Slugify("Backend Developer")      = "backend-developer"
//	Slugify("  Site   Reliability ")  = "site-reliability"
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
