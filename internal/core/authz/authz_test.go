package authz

import (
	"errors"
	"testing"

	"github.com/quickshop/store-api/internal/core/domain"
)

func shopper(subject string) domain.Identity {
	return domain.Identity{Subject: subject, Scopes: domain.RoleShopper.Scopes()}
}

func admin(subject string) domain.Identity {
	return domain.Identity{Subject: subject, Scopes: domain.RoleAdmin.Scopes()}
}

func TestDecide_AdminScope(t *testing.T) {
	if err := Decide(admin("root"), domain.ScopeProductsAdmin, ""); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if err := Decide(shopper("alice"), domain.ScopeProductsAdmin, ""); !errors.Is(err, domain.ErrInsufficientScope) {
		t.Fatalf("expected ErrInsufficientScope, got %v", err)
	}
}

func TestDecide_SelfScope(t *testing.T) {
	if err := Decide(shopper("alice"), domain.ScopeUsersSelf, "alice"); err != nil {
		t.Fatalf("expected allow on own record, got %v", err)
	}
	if err := Decide(shopper("alice"), domain.ScopeUsersSelf, "bob"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDecide_CartOwnerOnly(t *testing.T) {
	// alice (non-admin) on bob's cart: denied as not-owner, no scope issue.
	if err := Decide(shopper("alice"), domain.ScopeCartsSelf, "bob"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	// an admin on bob's cart is denied the exact same way: carts have no
	// admin override.
	if err := Decide(admin("root"), domain.ScopeCartsSelf, "bob"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for admin, got %v", err)
	}
	if err := Decide(admin("root"), domain.ScopeCartsSelf, "root"); err != nil {
		t.Fatalf("expected allow on own cart, got %v", err)
	}
}

// Adding admin scopes never flips an admin-gated Deny into Allow for someone
// who already holds them, and never flips an ownership Deny at all.
func TestDecide_ScopeMonotonicity(t *testing.T) {
	base := shopper("alice")
	elevated := domain.Identity{
		Subject: "alice",
		Scopes:  append(domain.RoleShopper.Scopes(), domain.ScopeUsersAdmin, domain.ScopeProductsAdmin),
	}

	// Admin-gated op: elevation turns Deny into Allow.
	if err := Decide(base, domain.ScopeUsersAdmin, ""); err == nil {
		t.Fatalf("expected deny for base identity")
	}
	if err := Decide(elevated, domain.ScopeUsersAdmin, ""); err != nil {
		t.Fatalf("expected allow for elevated identity, got %v", err)
	}

	// Everything the base identity could do, the elevated one still can.
	for _, scope := range base.Scopes {
		if Decide(base, scope, "alice") == nil && Decide(elevated, scope, "alice") != nil {
			t.Fatalf("elevation revoked scope %s", scope)
		}
	}

	// Ownership Deny is unaffected by elevation.
	if err := Decide(elevated, domain.ScopeCartsSelf, "bob"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner to survive elevation, got %v", err)
	}
}

func TestDecide_EmptyScopes(t *testing.T) {
	id := domain.Identity{Subject: "alice"}
	if err := Decide(id, domain.ScopeUsersSelf, "alice"); !errors.Is(err, domain.ErrInsufficientScope) {
		t.Fatalf("expected ErrInsufficientScope, got %v", err)
	}
}
