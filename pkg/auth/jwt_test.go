package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("golfer@example.com", "super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := Parse(tok, "super-secret")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Email() != "golfer@example.com" {
		t.Fatalf("subject mismatch: got %q", claims.Email())
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestParse_AcceptedUntilExpiryRejectedAfter(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("golfer@example.com", "k", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	issued := time.Now()

	if _, err := Parse(tok, "k", jwt.WithTimeFunc(func() time.Time { return issued.Add(59 * time.Minute) })); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	_, err = Parse(tok, "k", jwt.WithTimeFunc(func() time.Time { return issued.Add(61 * time.Minute) }))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired after expiry, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("a@b.com", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := Parse(tok, "wrong-secret"); err == nil {
		t.Fatal("expected signature error, got nil")
	}
}

func TestParse_MissingSubject(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("", "k", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := Parse(tok, "k"); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@b.com",
		Audience:  []string{Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(tok, "k"); err == nil {
		t.Fatal("expected HS512 token to be rejected")
	}
}

func TestEmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewAccessToken("a@b.com", "", time.Hour); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
	if _, err := Parse("x.y.z", ""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := Parse("not.a.jwt", "k"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
