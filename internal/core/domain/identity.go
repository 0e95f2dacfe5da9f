package domain

// Identity is the verified (subject, scopes) pair extracted from a token.
// Scopes are a snapshot taken at issuance; a role change after issuance does
// not alter outstanding identities.
type Identity struct {
	Subject string
	Scopes  []string
}

// HasScope reports whether the identity carries the given scope.
func (i Identity) HasScope(scope string) bool {
	for _, s := range i.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
