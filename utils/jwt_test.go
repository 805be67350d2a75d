package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-123", "devotee@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected token to be valid")
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("subject = %q, want user-123", sub)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected garbage token to fail validation")
	}
	if _, err := ExtractIDFromToken(""); err == nil {
		t.Fatal("expected empty token to fail")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "devotee@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	parsed, err := ValidateToken(token)
	if err == nil && parsed.Valid {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Fatal("hash is not deterministic")
	}
	if a == HashToken("other-token") {
		t.Fatal("distinct tokens collided")
	}
}
