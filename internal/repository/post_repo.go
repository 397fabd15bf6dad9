package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog_api/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostSQLite { return &PostSQLite{db: db} }

var _ Posts = (*PostSQLite)(nil)

const (
	insertPostSQL = `INSERT INTO posts (title, body, created_at, author_id) VALUES (?, ?, ?, ?)`

	selectPostsSQL         = `SELECT id, title, body, created_at, author_id FROM posts ORDER BY id`
	selectPostsByAuthorSQL = `SELECT id, title, body, created_at, author_id FROM posts WHERE author_id = ? ORDER BY id`
	selectOwnedPostSQL     = `SELECT id, title, body, created_at, author_id FROM posts WHERE id = ? AND author_id = ?`

	updatePostSQL = `UPDATE posts SET title = ?, body = ? WHERE id = ? AND author_id = ?`
	deletePostSQL = `DELETE FROM posts WHERE id = ? AND author_id = ?`
)

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorID); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// Create inserts a post and returns its ID. A zero CreatedAt is set to now.
func (r *PostSQLite) Create(ctx context.Context, p models.Post) (int, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx, insertPostSQL, p.Title, p.Body, p.CreatedAt.UTC(), p.AuthorID)
	if err != nil {
		return 0, fmt.Errorf("insert post for author %d: %w", p.AuthorID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post: %w", err)
	}
	return int(lastID), nil
}

func (r *PostSQLite) List(ctx context.Context) ([]models.Post, error) {
	return r.query(ctx, selectPostsSQL)
}

func (r *PostSQLite) ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error) {
	return r.query(ctx, selectPostsByAuthorSQL, authorID)
}

func (r *PostSQLite) query(ctx context.Context, q string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 64)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

// GetOwned returns post id if authorID owns it, otherwise (nil, nil).
func (r *PostSQLite) GetOwned(ctx context.Context, id, authorID int) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectOwnedPostSQL, id, authorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	return p, nil
}

// UpdateOwned replaces title and body of an owned post. created_at and author_id never change.
func (r *PostSQLite) UpdateOwned(ctx context.Context, id, authorID int, title, body string) (*models.Post, error) {
	return r.mutateOwned(ctx, id, authorID, func(tx *sql.Tx, p *models.Post) error {
		if _, err := tx.ExecContext(ctx, updatePostSQL, title, body, id, authorID); err != nil {
			return fmt.Errorf("update post %d: %w", id, err)
		}
		p.Title = title
		p.Body = body
		return nil
	})
}

// DeleteOwned removes an owned post and returns the removed row.
func (r *PostSQLite) DeleteOwned(ctx context.Context, id, authorID int) (*models.Post, error) {
	return r.mutateOwned(ctx, id, authorID, func(tx *sql.Tx, _ *models.Post) error {
		if _, err := tx.ExecContext(ctx, deletePostSQL, id, authorID); err != nil {
			return fmt.Errorf("delete post %d: %w", id, err)
		}
		return nil
	})
}

func (r *PostSQLite) mutateOwned(ctx context.Context, id, authorID int, write func(*sql.Tx, *models.Post) error) (*models.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin post transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	p, err := scanPost(tx.QueryRowContext(ctx, selectOwnedPostSQL, id, authorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	if err := write(tx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit post %d: %w", id, err)
	}
	return p, nil
}
