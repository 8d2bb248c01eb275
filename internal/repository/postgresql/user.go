package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository. The users table carries UNIQUE
// (email); a violation maps to ErrEmailExists.
func (u *userRepository) Create(ctx context.Context, data user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	data.ID = uuid.NewString()

	query := `
		INSERT INTO users (id, name, email, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		data.ID,
		data.Name,
		data.Email,
		data.PasswordHash,
		data.Role,
		data.OAuthProvider,
		data.OAuthProviderID,
	).Scan(&data.CreatedAt, &data.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return data, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return u.getBy(ctx, "id", id)
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return u.getBy(ctx, "email", email)
}

func (u *userRepository) getBy(ctx context.Context, column string, value string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := fmt.Sprintf(`
		SELECT id, name, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		WHERE %s = $1
		LIMIT 1
	`, column)

	var data user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&data.ID, &data.Name, &data.Email, &data.PasswordHash, &data.Role,
		&data.OAuthProvider, &data.OAuthProviderID, &data.CreatedAt, &data.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return data, nil
}

// List implements user.UserRepository.
func (u *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var data user.User
		if err := rows.Scan(
			&data.ID, &data.Name, &data.Email, &data.PasswordHash, &data.Role,
			&data.OAuthProvider, &data.OAuthProviderID, &data.CreatedAt, &data.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
