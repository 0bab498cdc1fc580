package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// CreatePostInput carries all data needed to publish a referral post.
// ReferralCode may be empty; the service generates one.
type CreatePostInput struct {
	JobRole        string
	CompanyName    string
	JobDescription string
	Location       string
	IsPartTime     bool
	IsOffice       bool
	Salary         string
	ReferralCode   string
	ApplyLink      string
	AuthorID       string
}

// PostService defines use-case operations for referral posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
