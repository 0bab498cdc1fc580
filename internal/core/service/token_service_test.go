package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail  map[string]*domain.User
	byMobile map[string]*domain.User
	tokens   map[string]string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:  make(map[string]*domain.User),
		byMobile: make(map[string]*domain.User),
		tokens:   make(map[string]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	if _, exists := r.byMobile[user.Mobile]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.byEmail[copy.Email] = copy
	r.byMobile[copy.Mobile] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := cloneUser(u)
	found.Token = r.tokens[found.ID]
	return found, nil
}

func (r *stubUserRepo) FindByMobile(_ context.Context, mobile string) (*domain.User, error) {
	u, ok := r.byMobile[mobile]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := cloneUser(u)
	found.Token = r.tokens[found.ID]
	return found, nil
}

func (r *stubUserRepo) UpdateToken(_ context.Context, id, token string) error {
	r.tokens[id] = token
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			delete(r.byMobile, u.Mobile)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, newStubUserRepo())

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	email, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("unexpected email claim: %s", email)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute, newStubUserRepo())

	token, err := svc.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour, newStubUserRepo())
	verifier := NewTokenService("key-two", time.Hour, newStubUserRepo())

	token, err := issuer.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for foreign key, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, newStubUserRepo())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", token, err)
		}
	}
}

func TestTokenService_Resolve(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewTokenService("secret", time.Hour, repo)

	if _, err := repo.Insert(context.Background(), &domain.User{
		Name:   "dave",
		Email:  "dave@example.com",
		Mobile: "555",
		Role:   domain.RoleStudent,
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	token, err := svc.Issue("dave@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	user, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if user.Email != "dave@example.com" || user.Role != domain.RoleStudent {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestTokenService_Resolve_UnknownIdentity(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, newStubUserRepo())

	token, err := svc.Issue("ghost@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTokenService_KeyRotationInvalidatesTokens(t *testing.T) {
	repo := newStubUserRepo()
	before := NewTokenService("old-secret", time.Hour, repo)

	token, err := before.Issue("erin@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Simulated process restart with a rotated signing key.
	after := NewTokenService("new-secret", time.Hour, repo)
	if _, err := after.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed after rotation, got %v", err)
	}
}
