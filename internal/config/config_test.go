package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ECOWARS_CONFIG", "")
	t.Setenv("ECOWARS_ADDR", "")
	t.Setenv("ECOWARS_DB", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerAddress != defaultAddress {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.DatabasePath != defaultDBPath {
		t.Fatalf("expected default db path, got %q", cfg.DatabasePath)
	}
	if cfg.BotName != defaultBotName {
		t.Fatalf("expected default bot name, got %q", cfg.BotName)
	}
	if cfg.OpenMatchTTL != defaultOpenTTL {
		t.Fatalf("expected default ttl, got %v", cfg.OpenMatchTTL)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"server": {"address": ":9999"},
		"database": {"path": "/tmp/test.db"},
		"practice": {"bot_name": "TestBot"},
		"open_match_ttl_minutes": 30
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ECOWARS_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerAddress != ":9999" {
		t.Fatalf("address not applied, got %q", cfg.ServerAddress)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("db path not applied, got %q", cfg.DatabasePath)
	}
	if cfg.BotName != "TestBot" {
		t.Fatalf("bot name not applied, got %q", cfg.BotName)
	}
	if cfg.OpenMatchTTL != 30*time.Minute {
		t.Fatalf("ttl not applied, got %v", cfg.OpenMatchTTL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server": {"address": ":9999"}}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ECOWARS_CONFIG", path)
	t.Setenv("ECOWARS_ADDR", ":7777")
	t.Setenv("ECOWARS_DB", "/tmp/override.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerAddress != ":7777" {
		t.Fatalf("env address should win, got %q", cfg.ServerAddress)
	}
	if cfg.DatabasePath != "/tmp/override.db" {
		t.Fatalf("env db path should win, got %q", cfg.DatabasePath)
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("ECOWARS_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.json"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestNegativeTTLRejected(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"open_match_ttl_minutes": -1}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ECOWARS_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative ttl")
	}
}
