package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/auth"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

var testSession = auth.SessionInfo{UserAgent: "go-test", IPAddress: "127.0.0.1"}

type fakeTxRunner struct{}

func (fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	byEmail map[string]user.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.User{}, user.ErrEmailExists
	}
	f.nextID++
	u.ID = "user-" + string(rune('0'+f.nextID))
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

type fakeRefreshTokenRepo struct {
	revoked map[string]bool
	created int
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{revoked: make(map[string]bool)}
}

func (f *fakeRefreshTokenRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session auth.SessionInfo) error {
	f.created++
	f.revoked[token] = false
	return nil
}

func (f *fakeRefreshTokenRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	revoked, ok := f.revoked[token]
	if !ok {
		return true, nil
	}
	return revoked, nil
}

func (f *fakeRefreshTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	return 0, nil
}

func newTestService() (auth.AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(fakeTxRunner{}, userRepo, jwtService, tokenRepo)
	return svc, userRepo, tokenRepo
}

func registerTestUser(t *testing.T, svc auth.AuthService) user.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("new accounts start as employee", func(t *testing.T) {
		svc, userRepo, _ := newTestService()

		resp := registerTestUser(t, svc)
		assert.Equal(t, string(user.RoleEmployee), resp.Role)
		assert.Equal(t, "jamie@example.com", resp.Email)

		stored := userRepo.byEmail["jamie@example.com"]
		require.NotNil(t, stored.PasswordHash)
		assert.NotEqual(t, "password123", *stored.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _, _ := newTestService()
		registerTestUser(t, svc)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Other",
			Email:    "jamie@example.com",
			Password: "password456",
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Jamie",
			Email:    "jamie@example.com",
			Password: "short",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		svc, _, tokenRepo := newTestService()
		registerTestUser(t, svc)

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jamie@example.com",
			Password: "password123",
		}, testSession)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, 1, tokenRepo.created)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, _ := newTestService()
		registerTestUser(t, svc)

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jamie@example.com",
			Password: "wrong-password",
		}, testSession)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}, testSession)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("oauth-only account has no usable password", func(t *testing.T) {
		svc, userRepo, _ := newTestService()
		provider := "google"
		googleID := "g-123"
		_, err := userRepo.Create(ctx, user.User{
			Name:            "sso@example.com",
			Email:           "sso@example.com",
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &googleID,
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, auth.LoginRequest{
			Email:    "sso@example.com",
			Password: "password123",
		}, testSession)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("first sign-in creates an employee account", func(t *testing.T) {
		svc, userRepo, _ := newTestService()

		tokens, err := svc.LoginWithGoogle(ctx, "sso@example.com", "g-123", testSession)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)

		created, err := userRepo.GetByEmail(ctx, "sso@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.RoleEmployee, created.Role)
		require.NotNil(t, created.OAuthProvider)
		assert.Equal(t, "google", *created.OAuthProvider)
	})

	t.Run("second sign-in reuses the account", func(t *testing.T) {
		svc, userRepo, _ := newTestService()

		_, err := svc.LoginWithGoogle(ctx, "sso@example.com", "g-123", testSession)
		require.NoError(t, err)
		_, err = svc.LoginWithGoogle(ctx, "sso@example.com", "g-123", testSession)
		require.NoError(t, err)

		assert.Len(t, userRepo.byEmail, 1)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		svc, _, _ := newTestService()
		registerTestUser(t, svc)

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jamie@example.com",
			Password: "password123",
		}, testSession)
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		svc, _, _ := newTestService()
		registerTestUser(t, svc)

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jamie@example.com",
			Password: "password123",
		}, testSession)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		svc, _, _ := newTestService()
		registerTestUser(t, svc)

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jamie@example.com",
			Password: "password123",
		}, testSession)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

		_, err = svc.Refresh(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, tokenRepo := newTestService()
	registerTestUser(t, svc)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "jamie@example.com",
		Password: "password123",
	}, testSession)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))
	assert.True(t, tokenRepo.revoked[tokens.RefreshToken])

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(ctx, tokens.RefreshToken))
}
