// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Fault-injection defaults. Demo mode trades realism for snappy,
// error-free responses.
const (
	DefaultLatencyMin = 200 * time.Millisecond
	DefaultLatencyMax = 1200 * time.Millisecond
	DefaultErrorRate  = 0.05

	DemoLatencyMin = 20 * time.Millisecond
	DemoLatencyMax = 80 * time.Millisecond
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Fault injection for the simulated remote API
	LatencyMin time.Duration
	LatencyMax time.Duration
	ErrorRate  float64

	// Seeding
	SeedOnStart bool
	ForceReseed bool
}

// ParseFlags resolves configuration from CLI flags, falling back to
// environment variables (a .env file is loaded first, if present).
func ParseFlags(args []string) (Config, error) {
	// Best-effort: a missing .env is not an error
	_ = godotenv.Load()

	var cfg Config
	var latencyMinMS, latencyMaxMS int
	var errorRate float64
	var demo bool

	fs := flag.NewFlagSet("talentflow", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database file path (sqlite) or connection string (postgres)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Fault injection (-1 means "not set on the command line")
	fs.IntVar(&latencyMinMS, "latency-min", -1, "Minimum injected latency in ms")
	fs.IntVar(&latencyMaxMS, "latency-max", -1, "Maximum injected latency in ms")
	fs.Float64Var(&errorRate, "error-rate", -1, "Probability of an injected 500 per request (0..1)")
	fs.BoolVar(&demo, "demo", false, "Demo mode: low latency, no injected errors")

	fs.BoolVar(&cfg.SeedOnStart, "seed", true, "Seed the store on startup if empty")
	fs.BoolVar(&cfg.ForceReseed, "force-reseed", false, "Clear seeded tables and reseed on startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4400 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "talentflow.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	var err error
	cfg.LatencyMin, err = resolveDuration(latencyMinMS, "LATENCY_MIN_MS", DefaultLatencyMin)
	if err != nil {
		return Config{}, err
	}
	cfg.LatencyMax, err = resolveDuration(latencyMaxMS, "LATENCY_MAX_MS", DefaultLatencyMax)
	if err != nil {
		return Config{}, err
	}
	cfg.ErrorRate, err = resolveRate(errorRate)
	if err != nil {
		return Config{}, err
	}

	if demo {
		cfg.LatencyMin = DemoLatencyMin
		cfg.LatencyMax = DemoLatencyMax
		cfg.ErrorRate = 0
	}

	if cfg.LatencyMin < 0 || cfg.LatencyMax < 0 {
		return Config{}, errors.New("latency bounds must be non-negative")
	}
	if cfg.LatencyMin > cfg.LatencyMax {
		return Config{}, errors.New("latency-min must not exceed latency-max")
	}
	if cfg.ErrorRate < 0 || cfg.ErrorRate > 1 {
		return Config{}, errors.New("error-rate must be between 0 and 1")
	}

	return cfg, nil
}

func resolveDuration(flagMS int, envName string, fallback time.Duration) (time.Duration, error) {
	if flagMS >= 0 {
		return time.Duration(flagMS) * time.Millisecond, nil
	}
	if v := os.Getenv(envName); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s env variable", envName)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	return fallback, nil
}

func resolveRate(flagRate float64) (float64, error) {
	if flagRate >= 0 {
		return flagRate, nil
	}
	if v := os.Getenv("ERROR_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.New("invalid ERROR_RATE env variable")
		}
		return rate, nil
	}
	return DefaultErrorRate, nil
}
