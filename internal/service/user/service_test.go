package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Alex", Email: "alex@example.com", Role: user.RoleAdmin, CreatedAt: time.Now()},
		{ID: "u2", Name: "Blake", Email: "blake@example.com", Role: user.RoleEmployee, CreatedAt: time.Now()},
	}}
	svc := NewUserService(repo)

	t.Run("admin lists everyone", func(t *testing.T) {
		users, err := svc.List(ctx, user.Actor{ID: "u1", Role: user.RoleAdmin})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alex", users[0].Name)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		_, err := svc.List(ctx, user.Actor{ID: "u2", Role: user.RoleEmployee})
		assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
	})
}
