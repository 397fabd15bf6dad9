package service

import (
	"context"
	"fmt"

	"blog_api/internal/models"
	"blog_api/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// Register hashes password and stores a new non-admin user under a fresh public id.
// Usernames are not checked for uniqueness.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := models.User{
		PublicID:     uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Admin:        false,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}
	u.ID = id
	return &u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, publicID string) (*models.User, error) {
	return found(s.users.GetByPublicID(ctx, publicID))
}

// Promote sets admin=true on the target unconditionally.
func (s *UserService) Promote(ctx context.Context, publicID string) (*models.User, error) {
	return found(s.users.SetAdmin(ctx, publicID))
}

func (s *UserService) Delete(ctx context.Context, publicID string) (*models.User, error) {
	return found(s.users.Delete(ctx, publicID))
}

// found maps the repository's (nil, nil) miss to ErrUserNotFound.
func found(u *models.User, err error) (*models.User, error) {
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
