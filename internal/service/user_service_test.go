package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	u, err := svc.Register(context.Background(), "alice", "s3cr3t")
	require.NoError(t, err)

	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.Admin)
	_, err = uuid.Parse(u.PublicID)
	assert.NoError(t, err, "public id must be a UUID")

	require.Len(t, users.createCalls, 1)
	assert.NotEqual(t, "s3cr3t", users.createCalls[0].PasswordHash)
	assert.NoError(t, verifyPassword(users.createCalls[0].PasswordHash, "s3cr3t"))
}

func TestUserService_Register_ThenVerify(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	auth := NewAuthService(users, newTestTokenService(t))

	registered, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	verified, err := auth.VerifyCredentials(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, *registered, *verified)

	_, err = auth.VerifyCredentials(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestUserService_Register_DistinctPublicIDs(t *testing.T) {
	svc := NewUserService(newFakeUsers())

	a, err := svc.Register(context.Background(), "same", "pw")
	require.NoError(t, err)
	b, err := svc.Register(context.Background(), "same", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, a.PublicID, b.PublicID)
}

func TestUserService_Register_EmptyPassword(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	_, err := svc.Register(context.Background(), "bob", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, users.createCalls)
}

func TestUserService_Register_RepoError(t *testing.T) {
	users := newFakeUsers()
	users.err = errors.New("db down")
	svc := NewUserService(users)

	_, err := svc.Register(context.Background(), "carl", "pass123")
	assert.ErrorContains(t, err, "db down")
}

func TestUserService_PromoteGetDelete(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	promoted, err := svc.Promote(ctx, u.PublicID)
	require.NoError(t, err)
	assert.True(t, promoted.Admin)

	got, err := svc.Get(ctx, u.PublicID)
	require.NoError(t, err)
	assert.True(t, got.Admin)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := svc.Delete(ctx, u.PublicID)
	require.NoError(t, err)
	assert.Equal(t, u.PublicID, deleted.PublicID)

	_, err = svc.Get(ctx, u.PublicID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Delete(ctx, u.PublicID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Promote(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Register_LongPassword(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	auth := NewAuthService(users, newTestTokenService(t))

	long := strings.Repeat("a", 80)
	_, err := svc.Register(context.Background(), "alice", long)
	require.NoError(t, err)

	_, err = auth.VerifyCredentials(context.Background(), "alice", long)
	require.NoError(t, err)

	// differs only past byte 72, which bcrypt alone would ignore
	_, err = auth.VerifyCredentials(context.Background(), "alice", strings.Repeat("a", 79)+"b")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
