package jwt

import (
	"testing"
	"time"
)

func TestSignAndParseRoundTrip(t *testing.T) {
	token, err := SignSession("user-1", "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.SessionID != "sess-1" {
		t.Fatalf("SessionID = %q, want %q", claims.SessionID, "sess-1")
	}
}

func TestSignWithoutSession(t *testing.T) {
	token, err := Sign("user-2", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.SessionID != "" {
		t.Fatalf("SessionID = %q, want empty", claims.SessionID)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := Sign("user-3", -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsTampered(t *testing.T) {
	token, err := Sign("user-4", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse(token + "x"); err == nil {
		t.Fatal("expected error for tampered token")
	}
}
