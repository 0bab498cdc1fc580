package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// PredictionRepository defines persistence for classifier results.
type PredictionRepository interface {
	Insert(ctx context.Context, p *domain.Prediction) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Prediction, error)
}
