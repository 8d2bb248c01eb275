package auth

import (
	"context"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
)

// AuthService defines business logic for authentication. The rest of the
// system consumes its output as a verified actor identity; everything about
// credentials stays behind this interface.
type AuthService interface {
	// Register creates a new employee account
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest, session SessionInfo) (TokenResponse, error)

	// LoginWithGoogle signs in (or registers) a user from a verified Google
	// profile and issues a token pair
	LoginWithGoogle(ctx context.Context, email string, googleID string, session SessionInfo) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (AccessTokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
