package user

import (
	"context"
	"fmt"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/authz"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepo}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, actor user.Actor) ([]user.UserResponse, error) {
	if !authz.Permits(actor, authz.ActionUserList, "") {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}
