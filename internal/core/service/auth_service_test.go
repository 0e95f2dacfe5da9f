package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, username string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooMany(context.Context, string) (bool, error) { return l.blocked, nil }
func (l *stubLimiter) RecordFailure(context.Context, string) error   { l.failures++; return nil }
func (l *stubLimiter) Reset(context.Context, string) error           { l.resets++; return nil }

func newAuthService(repo ports.UserRepository, limiter LoginLimiter) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, limiter, bcrypt.MinCost, zerolog.Nop()), tokens
}

func TestAuthService_Register_DerivesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo, &stubLimiter{})

	user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "pass12345"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleShopper {
		t.Fatalf("expected shopper role, got %s", user.Role)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	admin, err := svc.Register(context.Background(), ports.RegisterInput{Username: "root", Password: "pass12345", Admin: true})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo, &stubLimiter{})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass12345"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "other4567"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc, tokens := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "s3cret-pw", Admin: true}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	raw, err := svc.Login(context.Background(), "carol", "s3cret-pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	id, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id.Subject != "carol" {
		t.Fatalf("expected subject carol, got %s", id.Subject)
	}
	if !id.HasScope(domain.ScopeUsersAdmin) || !id.HasScope(domain.ScopeProductsAdmin) {
		t.Fatalf("admin token missing admin scopes: %v", id.Scopes)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset after success, got %d", limiter.resets)
	}
}

// Wrong passwords and unknown usernames must be indistinguishable.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc, _ := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, noUser := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if wrongPass != noUser {
		t.Fatalf("expected identical error for both failure modes, got %v vs %v", wrongPass, noUser)
	}
	if limiter.failures != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", limiter.failures)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo, &stubLimiter{blocked: true})

	if _, err := svc.Login(context.Background(), "anyone", "anything"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
