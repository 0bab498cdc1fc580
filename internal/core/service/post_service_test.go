package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

type stubPostRepo struct {
	posts map[string]*domain.Post
	next  int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Insert(_ context.Context, post *domain.Post) (string, error) {
	r.next++
	id := fmt.Sprintf("post_%d", r.next)
	copy := *post
	r.posts[id] = &copy
	return id, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for id, p := range r.posts {
		copy := *p
		copy.ID = id
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func createInput() ports.CreatePostInput {
	return ports.CreatePostInput{
		JobRole:        "Backend Engineer",
		CompanyName:    "Acme",
		JobDescription: "Build APIs",
		Location:       "Remote",
		Salary:         "120k",
		ApplyLink:      "https://acme.example/jobs/1",
		AuthorID:       "user_1",
	}
}

func TestPostService_Create_GeneratesReferralCode(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("expected post id")
	}
	if len(post.ReferralCode) != 8 {
		t.Fatalf("expected generated 8-char referral code, got %q", post.ReferralCode)
	}
}

func TestPostService_Create_KeepsProvidedReferralCode(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	input := createInput()
	input.ReferralCode = "FRIEND42"
	post, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ReferralCode != "FRIEND42" {
		t.Fatalf("expected provided referral code, got %q", post.ReferralCode)
	}
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
