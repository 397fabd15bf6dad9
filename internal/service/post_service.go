package service

import (
	"context"
	"time"

	"blog_api/internal/models"
	"blog_api/internal/repository"
)

// PostInput is the writable part of a post.
type PostInput struct {
	Title string
	Body  string
}

type PostService struct {
	posts repository.Posts
	now   func() time.Time
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts, now: time.Now}
}

// ListAll returns every post regardless of author.
func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) ListOwn(ctx context.Context, authorID int) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

func (s *PostService) Get(ctx context.Context, id, authorID int) (*models.Post, error) {
	return ownedPost(s.posts.GetOwned(ctx, id, authorID))
}

// Create stores a post authored by authorID, stamped with the current UTC time.
func (s *PostService) Create(ctx context.Context, authorID int, in PostInput) (*models.Post, error) {
	p := models.Post{
		Title:     in.Title,
		Body:      in.Body,
		CreatedAt: s.now().UTC(),
		AuthorID:  authorID,
	}
	id, err := s.posts.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (s *PostService) Update(ctx context.Context, id, authorID int, in PostInput) (*models.Post, error) {
	return ownedPost(s.posts.UpdateOwned(ctx, id, authorID, in.Title, in.Body))
}

func (s *PostService) Delete(ctx context.Context, id, authorID int) (*models.Post, error) {
	return ownedPost(s.posts.DeleteOwned(ctx, id, authorID))
}

func ownedPost(p *models.Post, err error) (*models.Post, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}
