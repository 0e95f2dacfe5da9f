// Package authz holds the access-control decision engine. It is pure: the
// caller resolves the resource owner from storage first, then asks for a
// verdict. Handlers run this before touching query parameters or payloads.
package authz

import "github.com/quickshop/store-api/internal/core/domain"

// ownedScopes are scopes whose grant is conditional on the requester being
// the resource owner. Admin scopes never satisfy them: a token holding
// users:admin still cannot act on another user's cart.
var ownedScopes = map[string]struct{}{
	domain.ScopeUsersSelf: {},
	domain.ScopeCartsSelf: {},
}

// Decide returns nil when the identity may perform an operation gated by the
// required scope on a resource owned by owner. For admin-class scopes owner
// is ignored (pass ""). Deny reasons:
//
//	ErrInsufficientScope — the token does not carry the required scope.
//	ErrNotOwner          — the scope is owner-conditional and the token
//	                       subject is not the owner.
func Decide(id domain.Identity, required string, owner string) error {
	if !id.HasScope(required) {
		return domain.ErrInsufficientScope
	}
	if _, owned := ownedScopes[required]; owned && id.Subject != owner {
		return domain.ErrNotOwner
	}
	return nil
}
