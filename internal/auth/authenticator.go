package auth

import (
	"context"

	"github.com/christoffel/menuapp/internal/models"
)

// Authenticator defines the interface for credential checks.
// This abstraction allows swapping between different auth methods (static
// password table, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the credentials and returns the resolved user.
	// Unknown usernames resolve to a guest rather than an error: anyone may
	// browse the menu, only the chef edits it.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}
