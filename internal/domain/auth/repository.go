package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked on logout.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session SessionInfo) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error

	// DeleteExpiredRefreshTokens removes rows whose expiry has passed and
	// reports how many were deleted. Run periodically in the background.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
