package config

import (
	"testing"
	"time"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "todo-test")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/todos")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	var cfg StructuredConfig
	if err := parseEnv(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Auth.TokenSignKey != "super-secret" {
		t.Errorf("unexpected sign key: %q", cfg.Auth.TokenSignKey)
	}
	if cfg.Auth.TokenIssuer != "todo-test" {
		t.Errorf("unexpected issuer: %q", cfg.Auth.TokenIssuer)
	}
	if cfg.Auth.TokenDuration != 2*time.Hour {
		t.Errorf("unexpected token duration: %v", cfg.Auth.TokenDuration)
	}
	if cfg.Storage.DB.DSN != "postgres://localhost:5432/todos" {
		t.Errorf("unexpected DSN: %q", cfg.Storage.DB.DSN)
	}
	if cfg.Server.HTTPAddress != "localhost:9999" {
		t.Errorf("unexpected http address: %q", cfg.Server.HTTPAddress)
	}
	if cfg.Server.RequestTimeout != 45*time.Second {
		t.Errorf("unexpected request timeout: %v", cfg.Server.RequestTimeout)
	}
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	if err := parseEnv(&cfg); err == nil {
		t.Error("expected error for unparsable duration, got nil")
	}
}
