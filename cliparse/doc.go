// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the TalentFlow server.

# Configuration Sources

Settings resolve in priority order: CLI flags, then environment
variables, then defaults. A .env file in the working directory is
loaded into the environment first, if present.

# Settings

  - PORT (-p): server port (default: 4400)
  - DATABASE_URL (-d): sqlite file path or postgres connection string
    (default: talentflow.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - LATENCY_MIN_MS (-latency-min): minimum injected latency (default: 200)
  - LATENCY_MAX_MS (-latency-max): maximum injected latency (default: 1200)
  - ERROR_RATE (-error-rate): injected 500 probability (default: 0.05)
  - -demo: overrides fault injection to 20-80ms latency, zero errors
  - -seed: seed the store on startup if empty (default: true)
  - -force-reseed: clear seeded tables and reseed unconditionally

# Validation

ParseFlags rejects out-of-range error rates, inverted latency bounds,
and unknown database types.
*/
package cliparse
