package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/christoffel/menuapp/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// PasswordAuthenticator implements the credential check against a single
// configured admin account using bcrypt. There is no user database: the chef
// is the only privileged account, everyone else browses as a guest.
type PasswordAuthenticator struct {
	adminUsername string
	adminHash     []byte
}

// NewPasswordAuthenticator creates an authenticator for the given admin
// account. adminHash must be a bcrypt hash of the admin password.
func NewPasswordAuthenticator(adminUsername, adminHash string) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		adminUsername: adminUsername,
		adminHash:     []byte(adminHash),
	}
}

// HashPassword produces a bcrypt hash for seeding ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Authenticate resolves the user for the given credentials. The admin
// username with the right password resolves to the admin role; the admin
// username with a wrong password is rejected; any other username resolves to
// a guest.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	if !strings.EqualFold(username, a.adminUsername) {
		return models.User{Username: username, Role: models.RoleGuest}, nil
	}
	if err := bcrypt.CompareHashAndPassword(a.adminHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return models.User{Username: a.adminUsername, Role: models.RoleAdmin}, nil
}
