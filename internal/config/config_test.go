package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Euroleague.V1URL != "" || cfg.Euroleague.V2URL != "" {
		t.Fatalf("expected empty base url overrides, got %+v", cfg.Euroleague)
	}
	if cfg.Euroleague.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, cfg.Euroleague.HTTPTimeout)
	}
	if cfg.Euroleague.Competition != defaultCompetition {
		t.Fatalf("expected default competition %s, got %s", defaultCompetition, cfg.Euroleague.Competition)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName || !cfg.Metrics.OtlpInsecure {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envAPIV1URL, "http://example.com/v1")
	t.Setenv(envAPIV2URL, "http://example.com/v2")
	t.Setenv(envUserAgent, "tests/1.0")
	t.Setenv(envHTTPTimeout, "45s")
	t.Setenv(envCompetition, "u")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envOtelEndpoint, "collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Euroleague.V1URL != "http://example.com/v1" || cfg.Euroleague.V2URL != "http://example.com/v2" {
		t.Fatalf("expected base url overrides, got %+v", cfg.Euroleague)
	}
	if cfg.Euroleague.UserAgent != "tests/1.0" {
		t.Fatalf("expected user agent override, got %s", cfg.Euroleague.UserAgent)
	}
	if cfg.Euroleague.HTTPTimeout != 45*time.Second {
		t.Fatalf("expected timeout 45s, got %s", cfg.Euroleague.HTTPTimeout)
	}
	if cfg.Euroleague.Competition != "U" {
		t.Fatalf("expected competition U, got %s", cfg.Euroleague.Competition)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")

	cfg, _ := Load()

	if cfg.Euroleague.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Euroleague.HTTPTimeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "0s")

	cfg, _ := Load()

	if cfg.Euroleague.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Euroleague.HTTPTimeout)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "EUROLEAGUE_COMPETITION=U\nEUROLEAGUE_USER_AGENT=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envDotEnvFile, path)
	t.Setenv(envUserAgent, "from-env")
	t.Cleanup(func() { os.Unsetenv(envCompetition) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Euroleague.Competition != "U" {
		t.Fatalf("expected competition from file, got %s", cfg.Euroleague.Competition)
	}
	if cfg.Euroleague.UserAgent != "from-env" {
		t.Fatalf("expected environment to win, got %s", cfg.Euroleague.UserAgent)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))

	if _, err := Load(); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}
