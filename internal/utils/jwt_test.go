package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(42)
	key := "secret-key"

	issued, err := GenerateJWTToken(issuer, userID, time.Hour, key)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("iss", 1, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected signature validation error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("iss", 1, time.Hour, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "key", "other-iss"); err == nil {
		t.Error("expected issuer validation error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("iss", 1, -time.Minute, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(issued.SignedString, "key", "iss")
	if err == nil {
		t.Fatal("expected expiry error, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected parse error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{"valid bearer token", "Bearer my-jwt-token", "my-jwt-token", false},
		{"missing token part", "Bearer", "", true},
		{"empty header", "", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
		{"lowercase scheme", "bearer my-jwt-token", "", true},
		{"garbled header", "jhjhjhjhj", "", true},
		{"only spaces", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBearerScheme) {
					t.Errorf("expected ErrInvalidBearerScheme, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}
