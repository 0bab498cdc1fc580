package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// UserRepository defines persistence for identities. The store enforces the
// email and mobile uniqueness invariants (unique indexes), not the services.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.User, error)
	// UpdateToken overwrites the single cached bearer token for the identity.
	UpdateToken(ctx context.Context, id, token string) error
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
