// Package ml hosts the local career classifier. The pre-trained model ships
// as exported centroid weights (model.json); classification is a
// cosine-similarity nearest-centroid decision over the 17-dimension skill
// vector. A remote inference service can replace it behind ports.Classifier.
package ml

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

//go:embed model.json
var modelWeights []byte

// skillDimensions is the input vector length the exported model was trained on.
const skillDimensions = 17

var ErrEmptyProfile = errors.New("skill profile has no signal")

var _ ports.Classifier = (*CareerClassifier)(nil)

type centroid struct {
	Career  string    `json:"career"`
	Weights []float64 `json:"weights"`
}

// CareerClassifier evaluates the embedded model weights.
type CareerClassifier struct {
	centroids []centroid
}

// NewCareerClassifier parses the embedded model weights.
func NewCareerClassifier() (*CareerClassifier, error) {
	var model struct {
		Centroids []centroid `json:"centroids"`
	}
	if err := json.Unmarshal(modelWeights, &model); err != nil {
		return nil, fmt.Errorf("ml: parse model weights: %w", err)
	}
	if len(model.Centroids) == 0 {
		return nil, errors.New("ml: model has no centroids")
	}
	for _, c := range model.Centroids {
		if len(c.Weights) != skillDimensions {
			return nil, fmt.Errorf("ml: centroid %q has %d weights, want %d", c.Career, len(c.Weights), skillDimensions)
		}
	}
	return &CareerClassifier{centroids: model.Centroids}, nil
}

// Classify returns the career whose centroid is most similar to the profile.
func (c *CareerClassifier) Classify(profile domain.SkillProfile) (string, error) {
	input := profile.Vector()
	if norm(input) == 0 {
		return "", ErrEmptyProfile
	}

	best := ""
	bestScore := math.Inf(-1)
	for _, cen := range c.centroids {
		score := cosine(input, cen.Weights)
		if score > bestScore {
			bestScore = score
			best = cen.Career
		}
	}
	return best, nil
}

func cosine(a, b []float64) float64 {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (na * nb)
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
