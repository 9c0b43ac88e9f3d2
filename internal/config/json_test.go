package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "1h"
		},
		"storage": {"db": {"dsn": "postgres://json/db"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "10s"}
	}`)

	cfg, err := parseJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Auth.TokenSignKey != "json-secret" {
		t.Errorf("unexpected sign key: %q", cfg.Auth.TokenSignKey)
	}
	if cfg.Auth.TokenDuration != time.Hour {
		t.Errorf("unexpected duration: %v", cfg.Auth.TokenDuration)
	}
	if cfg.Storage.DB.DSN != "postgres://json/db" {
		t.Errorf("unexpected DSN: %q", cfg.Storage.DB.DSN)
	}
	if cfg.Server.HTTPAddress != "localhost:8081" {
		t.Errorf("unexpected address: %q", cfg.Server.HTTPAddress)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Server.RequestTimeout)
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	if _, err := parseJSON("/nonexistent/config.json"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	if _, err := parseJSON(path); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	if err := d.UnmarshalJSON([]byte(`"90s"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("expected 90s, got %v", time.Duration(d))
	}

	if err := d.UnmarshalJSON([]byte(`3600000000000`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(d) != time.Hour {
		t.Errorf("expected 1h, got %v", time.Duration(d))
	}

	if err := d.UnmarshalJSON([]byte(`"bogus"`)); err == nil {
		t.Error("expected error for unparsable duration string")
	}
}
