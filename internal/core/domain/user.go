package domain

import "time"

// Role is the enumerated account role. Scopes derive from the role once at
// token issuance; they are never recomputed from ad hoc flags afterwards.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleShopper Role = "shopper"
)

// Capability scopes embedded in tokens and checked by the authz engine.
const (
	ScopeUsersSelf     = "users:self"
	ScopeUsersAdmin    = "users:admin"
	ScopeProductsAdmin = "products:admin"
	ScopeCartsSelf     = "carts:self"
)

// baseScopes are granted to every account regardless of role.
var baseScopes = []string{ScopeUsersSelf, ScopeCartsSelf}

// adminScopes are granted in addition to baseScopes for RoleAdmin.
var adminScopes = []string{ScopeUsersAdmin, ScopeProductsAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleShopper
}

// Scopes returns the capability set for the role. The returned slice is a
// fresh copy; callers may embed it in a token without aliasing.
func (r Role) Scopes() []string {
	scopes := make([]string, 0, len(baseScopes)+len(adminScopes))
	scopes = append(scopes, baseScopes...)
	if r == RoleAdmin {
		scopes = append(scopes, adminScopes...)
	}
	return scopes
}

// User models a registered account. Username is the immutable document key;
// it is excluded from every update path.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Email        string    `json:"email,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
