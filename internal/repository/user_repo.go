package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog_api/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (public_id, username, password_hash, admin) VALUES (?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, public_id, username, password_hash, admin FROM users WHERE username = ? ORDER BY id LIMIT 1`
	selectUserByPublicIDSQL = `SELECT id, public_id, username, password_hash, admin FROM users WHERE public_id = ?`
	selectUsersSQL          = `SELECT id, public_id, username, password_hash, admin FROM users ORDER BY id`
	setUserAdminSQL         = `UPDATE users SET admin = 1 WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.PublicID, &u.Username, &u.PasswordHash, &u.Admin); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.PublicID, u.Username, u.PasswordHash, u.Admin)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches the oldest user with the given username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByPublicID fetches a user by public id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByPublicID(ctx context.Context, publicID string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByPublicIDSQL, publicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by public id %q: %w", publicID, err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// SetAdmin grants the admin flag and returns the updated user, or (nil, nil) if not found.
func (r *UserRepository) SetAdmin(ctx context.Context, publicID string) (*models.User, error) {
	return r.mutateByPublicID(ctx, publicID, setUserAdminSQL, func(u *models.User) { u.Admin = true })
}

// Delete removes the user (and, by cascade, their posts) and returns the removed row,
// or (nil, nil) if not found.
func (r *UserRepository) Delete(ctx context.Context, publicID string) (*models.User, error) {
	return r.mutateByPublicID(ctx, publicID, deleteUserSQL, nil)
}

// mutateByPublicID resolves the user and runs stmt against its internal id in one transaction.
func (r *UserRepository) mutateByPublicID(ctx context.Context, publicID, stmt string, apply func(*models.User)) (*models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin user transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	u, err := scanUser(tx.QueryRowContext(ctx, selectUserByPublicIDSQL, publicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by public id %q: %w", publicID, err)
	}

	if _, err := tx.ExecContext(ctx, stmt, u.ID); err != nil {
		return nil, fmt.Errorf("write user %q: %w", publicID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit user %q: %w", publicID, err)
	}

	if apply != nil {
		apply(u)
	}
	return u, nil
}
