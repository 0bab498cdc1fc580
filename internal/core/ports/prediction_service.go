package ports

import (
	"context"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

// Classifier maps a skill profile to a career label. The local
// implementation evaluates exported model weights; a remote inference
// service can stand in behind the same interface.
type Classifier interface {
	Classify(profile domain.SkillProfile) (string, error)
}

// PredictionService defines the career predictor use cases.
type PredictionService interface {
	Predict(ctx context.Context, userID string, profile domain.SkillProfile) (*domain.Prediction, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Prediction, error)
}
