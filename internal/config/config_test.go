package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "arena")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "meals")
	t.Setenv("RANDOM_ORG_URL", "http://localhost:9999/draw")
	t.Setenv("RANDOM_TIMEOUT", "2s")

	cfg := Load()
	if cfg.Env != "test" || cfg.Port != "8080" {
		t.Fatalf("unexpected app config: %+v", cfg)
	}
	if cfg.DBUser != "arena" || cfg.DBHost != "localhost" || cfg.DBPort != "3306" || cfg.DBName != "meals" {
		t.Fatalf("unexpected db config: %+v", cfg)
	}
	if cfg.DBPass != "" {
		t.Fatalf("DBPass should be allowed to stay empty, got %q", cfg.DBPass)
	}
	if cfg.RandomURL != "http://localhost:9999/draw" {
		t.Fatalf("RandomURL = %q", cfg.RandomURL)
	}
	if cfg.RandomTimeout != 2*time.Second {
		t.Fatalf("RandomTimeout = %v, want 2s", cfg.RandomTimeout)
	}
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_CAPACITY", "10")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "2")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "500ms")
	t.Setenv("RATE_LIMIT_TTL", "1m")
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "ip")

	cfg := LoadRateLimitConfig()
	if !cfg.Enabled || cfg.Capacity != 10 || cfg.RefillTokens != 2 {
		t.Fatalf("unexpected rate limit config: %+v", cfg)
	}
	if cfg.RefillInterval != 500*time.Millisecond || cfg.TTL != time.Minute {
		t.Fatalf("unexpected intervals: %+v", cfg)
	}
	if cfg.KeyStrategy != "ip" {
		t.Fatalf("KeyStrategy = %q, want ip", cfg.KeyStrategy)
	}
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "-5")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "10s")
	t.Setenv("RATE_LIMIT_TTL", "1s") // shorter than five refill cycles

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want clamped to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d, want clamped to 1", cfg.RefillTokens)
	}
	if want := 50 * time.Second; cfg.TTL != want {
		t.Errorf("TTL = %v, want raised to %v", cfg.TTL, want)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_BOOL_ON", "yes")
	t.Setenv("X_BOOL_OFF", "0")
	t.Setenv("X_BOOL_BAD", "maybe")
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "forty-two")
	t.Setenv("X_DUR", "1m30s")
	t.Setenv("X_DUR_BAD", "soon")

	if got := envStr("X_STR", "d"); got != "value" {
		t.Errorf("envStr = %q", got)
	}
	if got := envStr("X_MISSING", "d"); got != "d" {
		t.Errorf("envStr default = %q", got)
	}
	if !envBool("X_BOOL_ON", false) || envBool("X_BOOL_OFF", true) {
		t.Error("envBool misread explicit values")
	}
	if !envBool("X_BOOL_BAD", true) {
		t.Error("envBool should fall back to default on garbage")
	}
	if got := envInt("X_INT", 0); got != 42 {
		t.Errorf("envInt = %d", got)
	}
	if got := envInt("X_INT_BAD", 7); got != 7 {
		t.Errorf("envInt default = %d", got)
	}
	if got := envDur("X_DUR", 0); got != 90*time.Second {
		t.Errorf("envDur = %v", got)
	}
	if got := envDur("X_DUR_BAD", time.Second); got != time.Second {
		t.Errorf("envDur default = %v", got)
	}
}
