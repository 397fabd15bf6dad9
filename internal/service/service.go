package service

import (
	"context"
	"time"

	"blog_api/internal/models"
	"blog_api/internal/repository"
)

// Authorization covers login and bearer-token checks.
type Authorization interface {
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// Users manages accounts. Missing targets are reported as ErrUserNotFound.
type Users interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, publicID string) (*models.User, error)
	Promote(ctx context.Context, publicID string) (*models.User, error)
	Delete(ctx context.Context, publicID string) (*models.User, error)
}

// Posts manages blog posts. Everything except ListAll is scoped to the author;
// foreign or missing posts are reported as ErrPostNotFound.
type Posts interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	ListOwn(ctx context.Context, authorID int) ([]models.Post, error)
	Get(ctx context.Context, id, authorID int) (*models.Post, error)
	Create(ctx context.Context, authorID int, in PostInput) (*models.Post, error)
	Update(ctx context.Context, id, authorID int, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, id, authorID int) (*models.Post, error)
}

// Service aggregates all sub-services. Users and Posts share method names,
// so always go through the field (s.Users.Delete, s.Posts.Delete).
type Service struct {
	Authorization
	Users
	Posts
}

// Options carries the settings read at startup.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
}

func NewService(repos *repository.Repository, opts Options) (*Service, error) {
	tokens, err := NewTokenService(opts.SigningKey, opts.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Users:         NewUserService(repos.Users),
		Posts:         NewPostService(repos.Posts),
	}, nil
}
