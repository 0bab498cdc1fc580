package redis

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

const predictionTTL = 24 * time.Hour

// PredictionCache memoises classifier results in Redis. The model is
// deterministic, so identical skill profiles always map to the same career.
// Key format: predict:<sha256 of the input vector>
type PredictionCache struct {
	client *redis.Client
}

// NewPredictionCache creates a PredictionCache wrapping the given Redis client.
func NewPredictionCache(client *redis.Client) *PredictionCache {
	return &PredictionCache{client: client}
}

// Get returns the cached career for the profile, if any.
func (p *PredictionCache) Get(ctx context.Context, profile domain.SkillProfile) (string, bool, error) {
	career, err := p.client.Get(ctx, p.key(profile)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("prediction cache get: %w", err)
	}
	return career, true, nil
}

// Set records the career for the profile (expires after predictionTTL).
func (p *PredictionCache) Set(ctx context.Context, profile domain.SkillProfile, career string) error {
	return p.client.Set(ctx, p.key(profile), career, predictionTTL).Err()
}

func (p *PredictionCache) key(profile domain.SkillProfile) string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, v := range profile.Vector() {
		binary.BigEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	return fmt.Sprintf("predict:%x", h.Sum(nil))
}
