package models

// Role distinguishes the chef from browsing guests.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User represents an account resolved at login.
//
// There is exactly one admin account (the chef); guests are anonymous and get
// a transient user with RoleGuest.
type User struct {
	// Username is the login name. Empty for anonymous guests.
	Username string

	// Role controls access to the menu-editing flows.
	Role Role
}

// IsAdmin reports whether the user may enter the edit/remove flows.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
