package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

var _ ports.TokenVerifier = (*TokenService)(nil)

// TokenService issues and verifies HS256 bearer tokens carrying the
// identity's email claim. The signing secret is fixed at construction and
// never changes for the lifetime of the process; rotating it invalidates
// every previously issued token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	repo   ports.UserRepository
}

func NewTokenService(secret string, ttl time.Duration, repo ports.UserRepository) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, repo: repo}
}

// Issue returns a signed token with claims {email, exp=now+ttl}.
func (s *TokenService) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the email claim. The two
// failure modes stay distinguishable: domain.ErrTokenExpired for a
// well-signed token past its exp, domain.ErrTokenMalformed for everything
// else (bad shape, bad signature, foreign key, missing claim).
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return "", domain.ErrTokenMalformed
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrTokenMalformed
	}
	return email, nil
}

// Resolve verifies the token and loads the identity its email claim points
// at. Callers treat every failure as "cannot authenticate".
func (s *TokenService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByEmail(ctx, email)
}
