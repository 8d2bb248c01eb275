package user

import "context"

// UserService defines business logic for user lookups.
type UserService interface {
	// List returns every registered user. Admin only; the admin dashboard
	// uses it to pick an assignee for new tasks.
	List(ctx context.Context, actor Actor) ([]UserResponse, error)
}
