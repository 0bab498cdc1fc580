package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// SignupInput carries the self-service registration fields.
type SignupInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Role     domain.Role
}

// AuthService implements the session issuance flows: registration and login.
// Both return a bearer token cached on the identity record.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, mobile, password string) (string, *domain.User, error)
}

// TokenVerifier is the read-only token contract consumed by the access
// control gate: verify a bearer token and resolve it to an identity. It must
// never mutate identity or token state.
type TokenVerifier interface {
	// Verify returns the email claim, or domain.ErrTokenMalformed /
	// domain.ErrTokenExpired so callers can tell the two apart.
	Verify(token string) (string, error)
	// Resolve verifies the token and loads the matching identity.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
