package middleware

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/auth"
	"github.com/christoffel/menuapp/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UsernameKey is the context key for storing the authenticated username.
	UsernameKey contextKey = "username"
	// RoleKey is the context key for storing the authenticated user's role.
	RoleKey contextKey = "role"
)

// ErrAdminOnly is returned when a guest calls a chef-only procedure.
var ErrAdminOnly = errors.New("this action is reserved for the chef")

// GetUsername extracts the username from the context.
// Returns empty string if not found.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// GetRole extracts the user role from the context.
// Returns RoleGuest if not found.
func GetRole(ctx context.Context) models.Role {
	role, ok := ctx.Value(RoleKey).(models.Role)
	if !ok {
		return models.RoleGuest
	}
	return role
}

// validateBearer parses the Authorization header and returns the claims.
func validateBearer(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(parts[1])
}

// RequireAdmin returns a middleware that validates JWT tokens and only lets
// the chef through. It is applied to the editing, removal, and drink-list
// procedures; guests get CodePermissionDenied.
func RequireAdmin(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			claims, err := validateBearer(jwtManager, authHeader)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if claims.Role != models.RoleAdmin {
				return nil, connect.NewError(connect.CodePermissionDenied, ErrAdminOnly)
			}

			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			return next(ctx, req)
		}
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but
// allows requests without authentication. Browsing and ordering work for
// anonymous guests; a valid token just enriches the context.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader != "" {
				// Validate token (ignore errors - optional auth)
				claims, err := validateBearer(jwtManager, authHeader)
				if err == nil {
					ctx = context.WithValue(ctx, UsernameKey, claims.Username)
					ctx = context.WithValue(ctx, RoleKey, claims.Role)
				}
			}
			return next(ctx, req)
		}
	}
}
