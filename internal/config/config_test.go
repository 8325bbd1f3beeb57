package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	// Empty variables count as unset
	for _, key := range []string{"PORT", "CORS_ALLOW_ORIGIN", "API_ECHO_LEGACY_STATUS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected default port 8081, got %s", cfg.Port)
	}
	if cfg.Dispatch.AllowOrigin != "*" {
		t.Errorf("Expected default origin *, got %s", cfg.Dispatch.AllowOrigin)
	}
	if cfg.Dispatch.LegacyEchoStatus {
		t.Error("Expected legacy echo status to be off by default")
	}
	if cfg.HTTP.RateLimitBurst != 200 {
		t.Errorf("Expected default burst 200, got %d", cfg.HTTP.RateLimitBurst)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_ECHO_LEGACY_STATUS", "true")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if !cfg.Dispatch.LegacyEchoStatus {
		t.Error("Expected legacy echo status to be on")
	}
	if cfg.Dispatch.AllowOrigin != "https://example.com" {
		t.Errorf("Unexpected origin %s", cfg.Dispatch.AllowOrigin)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"LOG_FORMAT": "xml",
		"LOG_LEVEL":  "loud",
		"PORT":       "http",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", key, value)
			}
		})
	}
}

func TestRuntimeApply(t *testing.T) {
	base := func() *Config {
		return &Config{Environment: "development", Log: LogConfig{Level: "info", Format: "text"}}
	}

	t.Setenv("LOG_FORMAT", "")

	cfg := Runtime{}.Apply(base())
	if cfg.Log.Format != "text" {
		t.Errorf("Expected text format outside Lambda, got %s", cfg.Log.Format)
	}

	cfg = Runtime{Lambda: true, Stage: "prod"}.Apply(base())
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json format in Lambda, got %s", cfg.Log.Format)
	}
	if !cfg.IsProduction() {
		t.Errorf("Expected production environment for prod stage, got %s", cfg.Environment)
	}
}

func TestDetectRuntime(t *testing.T) {
	env := map[string]string{
		"AWS_LAMBDA_FUNCTION_NAME":        "ApiHandler",
		"AWS_REGION":                      "eu-west-1",
		"AWS_LAMBDA_FUNCTION_MEMORY_SIZE": "512",
	}
	rt := DetectRuntime(func(key string) string { return env[key] })

	if !rt.Lambda || rt.FunctionName != "ApiHandler" || rt.Region != "eu-west-1" {
		t.Errorf("Expected Lambda detection, got %+v", rt)
	}
	if rt.Stage != "dev" {
		t.Errorf("Expected default stage dev, got %s", rt.Stage)
	}
	if rt.MemoryMB != 512 {
		t.Errorf("Expected 512MB, got %d", rt.MemoryMB)
	}
	if rt.Mode() != "lambda" {
		t.Errorf("Expected lambda mode, got %s", rt.Mode())
	}

	local := DetectRuntime(func(string) string { return "" })
	if local.Lambda || local.Mode() != "server" {
		t.Errorf("Expected server runtime, got %+v", local)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", logger.Formatter)
	}

	if _, err := NewLogger(LogConfig{Level: "nope"}); err == nil {
		t.Error("Expected error for invalid level")
	}
}
