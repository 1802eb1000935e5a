package auth_test

import (
	"testing"
	"time"

	"github.com/hireloop/hireloop-backend/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue(42, auth.RoleStudent)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned unexpected error: %v", err)
	}
	if identity.UserID != 42 {
		t.Errorf("UserID = %d, want 42", identity.UserID)
	}
	if identity.Role != auth.RoleStudent {
		t.Errorf("Role = %q, want %q", identity.Role, auth.RoleStudent)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", -time.Minute)

	token, err := codec.Issue(7, auth.RoleRecruiter)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	if _, err := codec.Verify(token); err == nil {
		t.Error("Verify accepted an expired token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := auth.NewTokenCodec("secret-a", time.Hour)
	verifier := auth.NewTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue(7, auth.RoleStudent)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify accepted a token signed with a different secret")
	}
}

func TestVerifyGarbage(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Verify(tokenString); err == nil {
			t.Errorf("Verify(%q) accepted a malformed token", tokenString)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"student", "recruiter"} {
		role, err := auth.ParseRole(valid)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", valid, err)
		}
		if string(role) != valid {
			t.Errorf("ParseRole(%q) = %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "admin", "studnet", "Student"} {
		if _, err := auth.ParseRole(invalid); err == nil {
			t.Errorf("ParseRole(%q) expected error, got nil", invalid)
		}
	}
}
