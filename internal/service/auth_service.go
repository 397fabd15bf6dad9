package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"blog_api/internal/models"
	"blog_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login and request authentication.
type AuthService struct {
	users  repository.Users
	tokens *TokenService
}

func NewAuthService(users repository.Users, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// VerifyCredentials returns the user owning username if password matches.
// Unknown user and wrong password are both ErrInvalidPassword for the caller.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPassword, ErrUserNotFound)
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

// GenerateToken validates credentials and returns JWT
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(u.PublicID)
}

// ParseToken parses JWT and returns the subject's public id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	return s.tokens.Verify(accessToken)
}

// Authenticate resolves accessToken to a live user. A token whose subject
// no longer exists is ErrInvalidToken, same as a forged one.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	publicID, err := s.tokens.Verify(accessToken)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// bcrypt reads at most 72 bytes, so passwords are digested first.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
}
