package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"skinkit/internal/theme"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:2323" {
		t.Fatalf("Addr() = %q, want 0.0.0.0:2323", cfg.Addr())
	}
	if cfg.IdleTimeout != defaultIdleTimeout {
		t.Fatalf("IdleTimeout = %s, want %s", cfg.IdleTimeout, defaultIdleTimeout)
	}
	if cfg.Variant != theme.VariantOffice {
		t.Fatalf("Variant = %q, want office", cfg.Variant)
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.SkinFile != "" {
		t.Fatalf("SkinFile = %q, want empty", cfg.SkinFile)
	}
	if cfg.HTTPAddr != "" {
		t.Fatalf("HTTPAddr = %q, want empty", cfg.HTTPAddr)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("SKINKIT_SSH_HOST", "127.0.0.1")
	t.Setenv("SKINKIT_SSH_PORT", "2424")
	t.Setenv("SKINKIT_SSH_HOST_KEY_PATH", "keys//host")
	t.Setenv("SKINKIT_SSH_IDLE_TIMEOUT", "45s")
	t.Setenv("SKINKIT_SSH_MAX_SESSIONS", "4")
	t.Setenv("SKINKIT_SSH_RATE_LIMIT_PER_MINUTE", "12")
	t.Setenv("SKINKIT_SSH_RATE_BURST", "2")
	t.Setenv("SKINKIT_THEME_VARIANT", "Ember")
	t.Setenv("SKINKIT_SKIN_FILE", "skins/./custom.json")
	t.Setenv("SKINKIT_HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() unexpected error: %v", err)
	}
	want := Config{
		Host:               "127.0.0.1",
		Port:               2424,
		HostKeyPath:        "keys/host",
		IdleTimeout:        45 * time.Second,
		MaxSessions:        4,
		RateLimitPerMinute: 12,
		RateBurst:          2,
		Variant:            theme.VariantEmber,
		SkinFile:           "skins/custom.json",
		HTTPAddr:           "127.0.0.1:8080",
		LogLevel:           log.DebugLevel,
	}
	if cfg != want {
		t.Fatalf("LoadFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{name: "port not a number", key: "SKINKIT_SSH_PORT", value: "not-a-number", wantMsg: "SKINKIT_SSH_PORT"},
		{name: "port out of range", key: "SKINKIT_SSH_PORT", value: "70000", wantMsg: "between"},
		{name: "whitespace host", key: "SKINKIT_SSH_HOST", value: "   ", wantMsg: "must not be empty"},
		{name: "host key is cwd", key: "SKINKIT_SSH_HOST_KEY_PATH", value: ".", wantMsg: "current directory"},
		{name: "idle timeout", key: "SKINKIT_SSH_IDLE_TIMEOUT", value: "not-duration", wantMsg: "valid duration"},
		{name: "negative idle timeout", key: "SKINKIT_SSH_IDLE_TIMEOUT", value: "-1s", wantMsg: "greater than 0"},
		{name: "max sessions", key: "SKINKIT_SSH_MAX_SESSIONS", value: "0", wantMsg: "between"},
		{name: "rate limit", key: "SKINKIT_SSH_RATE_LIMIT_PER_MINUTE", value: "0", wantMsg: "between"},
		{name: "rate burst", key: "SKINKIT_SSH_RATE_BURST", value: "x", wantMsg: "integer"},
		{name: "http addr", key: "SKINKIT_HTTP_ADDR", value: "8080", wantMsg: "host:port"},
		{name: "log level", key: "LOG_LEVEL", value: "loud", wantMsg: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadFromEnv()
			if err == nil {
				t.Fatalf("LoadFromEnv() expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("LoadFromEnv() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFromEnvUnknownVariant(t *testing.T) {
	t.Setenv("SKINKIT_THEME_VARIANT", "sepia")
	_, err := LoadFromEnv()
	if !errors.Is(err, theme.ErrUnknownVariant) {
		t.Fatalf("LoadFromEnv() error = %v, want ErrUnknownVariant", err)
	}
}
