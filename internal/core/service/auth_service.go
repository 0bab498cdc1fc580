package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// AuthService implements signup and login. It owns all token cache mutation;
// the middleware gate only ever reads.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Signup registers a new identity, issues a token, and caches it on the
// record. Admin accounts are provisioned out of band, so the role must be
// student or alumni.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Mobile == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if input.Role == "" {
		input.Role = domain.RoleStudent
	}
	if !input.Role.IsValid() || input.Role == domain.RoleAdmin {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Email)
	if err != nil {
		return "", nil, err
	}
	if err := s.repo.UpdateToken(ctx, created.ID, token); err != nil {
		return "", nil, err
	}
	created.Token = token

	return token, created, nil
}

// Login authenticates by mobile number and password. The cached token is
// returned when it still verifies; otherwise a fresh token is minted and
// overwrites the cache. Unknown mobile and bad password collapse to the same
// error so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, mobile, password string) (string, *domain.User, error) {
	if mobile == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Token != "" {
		if _, err := s.tokens.Verify(user.Token); err == nil {
			return user.Token, user, nil
		}
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}
	if err := s.repo.UpdateToken(ctx, user.ID, token); err != nil {
		return "", nil, err
	}
	user.Token = token

	return token, user, nil
}
