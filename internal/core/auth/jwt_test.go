package auth

import (
	"errors"
	"testing"
	"time"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "users-api-test", TTL: ttl}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	tok, err := j.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	uid, err := j.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if uid != 42 {
		t.Fatalf("uid mismatch: got %d want 42", uid)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	j := newJWTer(-1 * time.Minute)
	tok, err := j.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = j.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	issuer := &JWTer{Secret: []byte("right-secret"), Issuer: "users-api-test", TTL: time.Hour}
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := &JWTer{Secret: []byte("wrong-secret"), Issuer: "users-api-test", TTL: time.Hour}
	_, err = verifier.Verify(tok)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := j.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}
