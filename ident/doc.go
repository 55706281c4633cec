// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates entity identifiers and derived slugs.

# Identifiers

NewID returns a UUID string for entities created at runtime:

	job.ID = ident.NewID()

The seed loader deliberately bypasses NewID and assigns readable
prefixed ids ("job-1", "candidate-42") so seeded candidates can
reference seeded jobs by a deterministic scheme.

# Slugs

Slugify derives a job's slug from its title at creation time:

	ident.Slugify("Backend Developer") // "backend-developer"

The slug is lowercased with whitespace runs collapsed to single
hyphens. It is derived once at creation and not refreshed when a
title is later patched.
*/
package ident
