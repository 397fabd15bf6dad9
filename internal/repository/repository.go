package repository

import (
	"context"
	"database/sql"

	"blog_api/internal/models"
)

// Users persists accounts. Lookups return (nil, nil) when no row matches.
type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, publicID string) (*models.User, error)
	Delete(ctx context.Context, publicID string) (*models.User, error)
}

// Posts persists blog posts. Owned* methods filter by author and return
// (nil, nil) when the post is missing or belongs to someone else.
type Posts interface {
	Create(ctx context.Context, p models.Post) (int, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error)
	GetOwned(ctx context.Context, id, authorID int) (*models.Post, error)
	UpdateOwned(ctx context.Context, id, authorID int, title, body string) (*models.Post, error)
	DeleteOwned(ctx context.Context, id, authorID int) (*models.Post, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
