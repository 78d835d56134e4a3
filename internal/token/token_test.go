package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yrwanda/practicelog/pkg/apperror"
)

func TestIssueValidate_RoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	signed, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestValidate_AcceptsExpiredClaims(t *testing.T) {
	// Expiry is policy-exempt: a token whose exp is long past must still
	// validate as long as the signature holds.
	svc := NewService("test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-10 * 365 * 24 * time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	userID, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("expected expired token to validate, got %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	signed, err := NewService("secret-a").Issue(1)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = NewService("secret-b").Validate(signed)
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestValidate_RejectsMalformed(t *testing.T) {
	svc := NewService("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(tok); !errors.Is(err, apperror.ErrUnauthorized) {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", tok, err)
		}
	}
}

func TestValidate_RejectsMissingSubject(t *testing.T) {
	svc := NewService("test-secret")

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestValidate_RejectsUnsignedAlg(t *testing.T) {
	svc := NewService("test-secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "9"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Validate(unsigned); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
