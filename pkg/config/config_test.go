package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SCORING_MESSAGE_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Scoring.MinTolerance != 0.03 || cfg.Scoring.MaxTolerance != 0.75 {
		t.Fatalf("tolerance bounds = %v..%v", cfg.Scoring.MinTolerance, cfg.Scoring.MaxTolerance)
	}
	if cfg.Scoring.MessageSeed != 42 {
		t.Fatalf("seed = %d", cfg.Scoring.MessageSeed)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("redis should be disabled by default")
	}
	if cfg.Redis.ProfileTTL != 30*time.Minute {
		t.Fatalf("profile ttl = %v", cfg.Redis.ProfileTTL)
	}
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing jwt secret")
	}
}

func TestLoadRejectsInvertedTolerance(t *testing.T) {
	setRequired(t)
	t.Setenv("SCORING_MIN_TOLERANCE", "0.8")
	t.Setenv("SCORING_MAX_TOLERANCE", "0.5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for min > max")
	}
}

func TestLoadRejectsBadFloat(t *testing.T) {
	setRequired(t)
	t.Setenv("SCORING_MAX_TOLERANCE", "wide")

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}
