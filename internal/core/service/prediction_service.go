package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// PredictionCache abstracts the classifier result cache (Redis). Identical
// skill profiles map to identical careers, so recomputing is pointless.
type PredictionCache interface {
	Get(ctx context.Context, profile domain.SkillProfile) (string, bool, error)
	Set(ctx context.Context, profile domain.SkillProfile, career string) error
}

type predictionService struct {
	repo       ports.PredictionRepository
	classifier ports.Classifier
	cache      PredictionCache
	log        zerolog.Logger
}

// NewPredictionService returns a PredictionService implementation.
func NewPredictionService(
	repo ports.PredictionRepository,
	classifier ports.Classifier,
	cache PredictionCache,
	log zerolog.Logger,
) ports.PredictionService {
	return &predictionService{
		repo:       repo,
		classifier: classifier,
		cache:      cache,
		log:        log,
	}
}

// Predict classifies a skill profile and persists the result for the calling
// user. A cache hit skips the classifier but still records the prediction in
// the user's history.
func (s *predictionService) Predict(ctx context.Context, userID string, profile domain.SkillProfile) (*domain.Prediction, error) {
	career, cached, err := s.cache.Get(ctx, profile)
	if err != nil {
		s.log.Warn().Err(err).Msg("prediction cache lookup failed, classifying anyway")
		cached = false
	}

	if !cached {
		career, err = s.classifier.Classify(profile)
		if err != nil {
			return nil, err
		}
		if cacheErr := s.cache.Set(ctx, profile, career); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Msg("failed to cache prediction")
		}
	}

	prediction := &domain.Prediction{
		UserID:    userID,
		Input:     profile,
		Career:    career,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.repo.Insert(ctx, prediction)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to persist prediction")
		return nil, err
	}
	prediction.ID = id

	s.log.Info().Str("user_id", userID).Str("career", career).Bool("cache_hit", cached).Msg("career predicted")
	return prediction, nil
}

// ListByUser returns the calling user's prediction history.
func (s *predictionService) ListByUser(ctx context.Context, userID string) ([]*domain.Prediction, error) {
	return s.repo.ListByUser(ctx, userID)
}
