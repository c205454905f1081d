package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/christoffel/menuapp/internal/models"
)

func newTestAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	hash, err := HashPassword("secret-sauce")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	return NewPasswordAuthenticator("chef", hash)
}

func TestAuthenticateAdmin(t *testing.T) {
	a := newTestAuthenticator(t)

	user, err := a.Authenticate(context.Background(), "chef", "secret-sauce")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if !user.IsAdmin() {
		t.Errorf("user role = %q, want admin", user.Role)
	}
	if user.Username != "chef" {
		t.Errorf("username = %q, want chef", user.Username)
	}
}

func TestAuthenticateAdminCaseInsensitive(t *testing.T) {
	a := newTestAuthenticator(t)

	user, err := a.Authenticate(context.Background(), "Chef", "secret-sauce")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if !user.IsAdmin() {
		t.Errorf("user role = %q, want admin", user.Role)
	}
}

func TestAuthenticateAdminWrongPassword(t *testing.T) {
	a := newTestAuthenticator(t)

	_, err := a.Authenticate(context.Background(), "chef", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownUsernameIsGuest(t *testing.T) {
	a := newTestAuthenticator(t)

	user, err := a.Authenticate(context.Background(), "alice", "whatever")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Role != models.RoleGuest {
		t.Errorf("user role = %q, want guest", user.Role)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want alice", user.Username)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(models.User{Username: "chef", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Username != "chef" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %q/%q, want chef/admin", claims.Username, claims.Role)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(models.User{Username: "chef", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(models.User{Username: "chef", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
