package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jasmitsingh01/school-management/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    42,
		Email: "jane@example.com",
		Name:  "Jane",
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "schooldir", time.Hour)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("expected email round trip, got %q", claims.Email)
	}
	if claims.Name != "Jane" {
		t.Errorf("expected name round trip, got %q", claims.Name)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expected exp after iat: iat=%d exp=%d", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestJWTService_TokensCarryUniqueIDs(t *testing.T) {
	svc := NewJWTService("test-secret", "schooldir", time.Hour)

	first, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct tokens for the same user via jti")
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", "schooldir", time.Hour)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing := NewJWTService("secret-one", "schooldir", time.Hour)
	verifying := NewJWTService("secret-two", "schooldir", time.Hour)

	token, err := issuing.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := verifying.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", "schooldir", -time.Minute)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "schooldir", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(input); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("input %q: expected ErrTokenInvalid, got %v", input, err)
		}
	}
}
