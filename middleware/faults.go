// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/adareyes/talentflow/cliparse"
)

// FaultPolicy injects artificial latency and random failures into API
// handlers, simulating an unreliable upstream so client fallback paths get
// exercised.
type FaultPolicy struct {
	ErrorRate  float64
	LatencyMin time.Duration
	LatencyMax time.Duration

	// Rand defaults to the shared source; tests inject a seeded one.
	Rand *rand.Rand
}

// PolicyFromConfig builds the fault policy the server runs with.
func PolicyFromConfig(cfg cliparse.Config) FaultPolicy {
	return FaultPolicy{
		ErrorRate:  cfg.ErrorRate,
		LatencyMin: cfg.LatencyMin,
		LatencyMax: cfg.LatencyMax,
	}
}

func (p FaultPolicy) float64() float64 {
	if p.Rand != nil {
		return p.Rand.Float64()
	}
	return rand.Float64()
}

func (p FaultPolicy) int63n(n int64) int64 {
	if p.Rand != nil {
		return p.Rand.Int63n(n)
	}
	return rand.Int63n(n)
}

// delay returns a random duration in [LatencyMin, LatencyMax].
func (p FaultPolicy) delay() time.Duration {
	if p.LatencyMax <= p.LatencyMin {
		return p.LatencyMin
	}
	return p.LatencyMin + time.Duration(p.int63n(int64(p.LatencyMax-p.LatencyMin)+1))
}

// WithFaults wraps a handler with the fault policy: every request waits out
// the injected latency, then fails with a 500 at the configured rate before
// the handler runs. Failed requests never touch the store.
func WithFaults(policy FaultPolicy, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d := policy.delay(); d > 0 {
			select {
			case <-time.After(d):
			case <-r.Context().Done():
				return
			}
		}

		if policy.ErrorRate > 0 && policy.float64() < policy.ErrorRate {
			slog.Debug("injected failure", "method", r.Method, "path", r.URL.Path)
			ErrorResponse(w, http.StatusInternalServerError, "Simulated server error")
			return
		}

		next(w, r)
	}
}
