package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickshop/store-api/internal/core/authz"
	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

// UserService implements account use-cases over the user repository.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// Get returns the named record for its owner or for an admin.
func (s *UserService) Get(ctx context.Context, id domain.Identity, username string) (*domain.User, error) {
	if err := s.selfOrAdmin(id, username); err != nil {
		return nil, err
	}
	return s.repo.FindByUsername(ctx, username)
}

// List returns every account. Admin scope required.
func (s *UserService) List(ctx context.Context, id domain.Identity) ([]*domain.User, error) {
	if err := authz.Decide(id, domain.ScopeUsersAdmin, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Update applies a partial update to the identity's own record. Username is
// not part of the update type; role and scopes are likewise untouchable here.
func (s *UserService) Update(ctx context.Context, id domain.Identity, username string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := authz.Decide(id, domain.ScopeUsersSelf, username); err != nil {
		return nil, err
	}

	upd := ports.UserUpdate{Email: input.Email, FullName: input.FullName}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	user, err := s.repo.Update(ctx, username, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Msg("user updated")
	return user, nil
}

// Delete removes the identity's own record, or any record for an admin.
func (s *UserService) Delete(ctx context.Context, id domain.Identity, username string) error {
	if err := s.selfOrAdmin(id, username); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Str("subject", id.Subject).Msg("user deleted")
	return nil
}

// selfOrAdmin allows the operation when the identity owns the record or
// carries the admin scope. The ownership deny reason wins over the missing
// admin scope so a non-admin acting on someone else's record sees NotOwner.
func (s *UserService) selfOrAdmin(id domain.Identity, username string) error {
	if authz.Decide(id, domain.ScopeUsersAdmin, "") == nil {
		return nil
	}
	return authz.Decide(id, domain.ScopeUsersSelf, username)
}
