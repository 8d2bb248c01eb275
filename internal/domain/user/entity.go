package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Assigns tasks, sanctions completed work
	RoleEmployee Role = "employee" // Regular employee
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Actor is the authenticated identity performing an operation. It is built
// from verified token claims per request and never persisted.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin checks if the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Actor returns the actor identity for this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
