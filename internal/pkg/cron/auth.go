package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/auth"
)

// AuthJobs holds background maintenance for the auth domain.
type AuthJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
}

func NewAuthJobs(refreshTokenRepo auth.RefreshTokenRepository) *AuthJobs {
	return &AuthJobs{refreshTokenRepo: refreshTokenRepo}
}

// PurgeExpiredRefreshTokens removes refresh token rows that can no longer be
// used. Expired tokens already read as revoked, so this only reclaims space.
func (j *AuthJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Expired refresh tokens purged", "deleted", deleted)
	}
	return nil
}
