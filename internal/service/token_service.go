package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 60 * time.Minute

// Claims defines JWT claims. The subject and public_id both carry the user's public id.
type Claims struct {
	jwt.RegisteredClaims
	PublicID string `json:"public_id"`
}

// TokenService issues and verifies HS256 bearer tokens with a process-wide key.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokenService(signingKey string, ttl time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, errors.New("token signing key is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for publicID that expires after the configured TTL.
func (s *TokenService) Issue(publicID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   publicID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PublicID: publicID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the public id bound to accessToken. Every failure (empty,
// malformed, bad signature, wrong algorithm, expired) yields ErrInvalidToken.
func (s *TokenService) Verify(accessToken string) (string, error) {
	if accessToken == "" {
		return "", ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.PublicID == "" || claims.Subject != claims.PublicID {
		return "", ErrInvalidToken
	}
	return claims.PublicID, nil
}
