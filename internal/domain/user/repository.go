package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create inserts a new user; surfaces ErrEmailExists when the email is
	// already taken.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all users ordered by name
	List(ctx context.Context) ([]User, error)
}
