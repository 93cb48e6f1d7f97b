package auth

import (
	"testing"
	"time"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", got, "user-123")
	}
}

func TestTokenVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := &TokenService{Secret: []byte("secret"), TTL: -1 * time.Second}
	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := svc.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewTokenService("wrong-secret", time.Hour).Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestTokenVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)
	tok, err := svc.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := svc.Verify(tok + "x"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
	if _, err := svc.Verify("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestDefaultTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", 0)
	if svc.TTL != time.Hour {
		t.Fatalf("expected 1h default TTL, got %v", svc.TTL)
	}
}

func TestPasswordHashAndMatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("hunter22hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "hunter22hunter22" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !PasswordMatches("hunter22hunter22", digest) {
		t.Fatal("correct password did not match digest")
	}
	if PasswordMatches("wrong-password", digest) {
		t.Fatal("wrong password matched digest")
	}
}
