package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("REDIS_LIST_TTL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.App.Port != "3333" {
		t.Errorf("port = %q, want 3333", cfg.App.Port)
	}
	if cfg.JWT.ExpiresIn != 7*24*time.Hour {
		t.Errorf("jwt expiry = %v", cfg.JWT.ExpiresIn)
	}
	if cfg.Redis.ListTTL != time.Minute {
		t.Errorf("list ttl = %v", cfg.Redis.ListTTL)
	}
	if cfg.Storage.BaseURL != "http://localhost:3333/files" {
		t.Errorf("storage base url = %q", cfg.Storage.BaseURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("CLEANUP_ORPHAN_MAX_AGE", "not-a-duration")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.App.BaseURL != "http://localhost:8080" {
		t.Errorf("base url = %q", cfg.App.BaseURL)
	}
	if cfg.JWT.ExpiresIn != 2*time.Hour {
		t.Errorf("jwt expiry = %v", cfg.JWT.ExpiresIn)
	}
	if cfg.Cleanup.OrphanAfter != 24*time.Hour {
		t.Errorf("invalid duration should fall back, got %v", cfg.Cleanup.OrphanAfter)
	}
	if got := cfg.Location().String(); got != "UTC" {
		t.Errorf("location = %q", got)
	}
}

func TestLocationFallsBackToLocal(t *testing.T) {
	cfg := &Config{App: AppConfig{Timezone: "Nowhere/Invalid"}}
	if cfg.Location() != time.Local {
		t.Error("expected time.Local for an unknown zone")
	}
}
