package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// PostRepository defines persistence for job referral posts.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (string, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
