package ml

import (
	"errors"
	"testing"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

func TestNewCareerClassifier_LoadsEmbeddedModel(t *testing.T) {
	c, err := NewCareerClassifier()
	if err != nil {
		t.Fatalf("model failed to load: %v", err)
	}
	if len(c.centroids) == 0 {
		t.Fatalf("expected centroids")
	}
}

func TestCareerClassifier_PeakedProfiles(t *testing.T) {
	c, err := NewCareerClassifier()
	if err != nil {
		t.Fatalf("model failed to load: %v", err)
	}

	cases := []struct {
		name    string
		profile domain.SkillProfile
		career  string
	}{
		{
			"database specialist",
			domain.SkillProfile{DatabaseFundamentals: 95, DataScience: 40},
			"Database Developer",
		},
		{
			"security specialist",
			domain.SkillProfile{CyberSecurity: 95, Networking: 50, ComputerForensics: 45},
			"Cyber Security Specialist",
		},
		{
			"data scientist",
			domain.SkillProfile{DataScience: 95, AIML: 60, DatabaseFundamentals: 40},
			"Data Scientist",
		},
		{
			"designer",
			domain.SkillProfile{GraphicsDesigning: 95, TechnicalCommunication: 30},
			"Graphics Designer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Classify(tc.profile)
			if err != nil {
				t.Fatalf("classify failed: %v", err)
			}
			if got != tc.career {
				t.Fatalf("expected %q, got %q", tc.career, got)
			}
		})
	}
}

func TestCareerClassifier_EmptyProfile(t *testing.T) {
	c, err := NewCareerClassifier()
	if err != nil {
		t.Fatalf("model failed to load: %v", err)
	}

	if _, err := c.Classify(domain.SkillProfile{}); !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("expected ErrEmptyProfile, got %v", err)
	}
}

func TestCareerClassifier_Deterministic(t *testing.T) {
	c, err := NewCareerClassifier()
	if err != nil {
		t.Fatalf("model failed to load: %v", err)
	}

	profile := domain.SkillProfile{ProgrammingSkills: 80, Development: 70, SoftwareEngineering: 60}
	first, err := c.Classify(profile)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := c.Classify(profile)
		if err != nil {
			t.Fatalf("classify failed: %v", err)
		}
		if got != first {
			t.Fatalf("classification not deterministic: %q vs %q", first, got)
		}
	}
}
