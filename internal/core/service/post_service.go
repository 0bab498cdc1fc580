package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// PostService implements the referral post use cases.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create publishes a referral post. When the author supplies no referral
// code, a short unique one is generated so applicants can always cite a code.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		JobRole:        input.JobRole,
		CompanyName:    input.CompanyName,
		JobDescription: input.JobDescription,
		Location:       input.Location,
		IsPartTime:     input.IsPartTime,
		IsOffice:       input.IsOffice,
		Salary:         input.Salary,
		ReferralCode:   input.ReferralCode,
		ApplyLink:      input.ApplyLink,
		AuthorID:       input.AuthorID,
		CreatedAt:      time.Now().UTC(),
	}
	if post.ReferralCode == "" {
		post.ReferralCode = generateReferralCode()
	}

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}
	post.ID = id

	s.logger.Info().Str("post_id", id).Str("company", post.CompanyName).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

// List returns all referral posts.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

// Delete removes a post by id.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// generateReferralCode returns an 8-character uppercase code derived from a
// random UUID.
func generateReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
