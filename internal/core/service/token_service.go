package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickshop/store-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService mints and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user. Scopes are resolved from the role here,
// once; the resulting set is a snapshot that stays valid until expiry even if
// the stored role changes afterwards.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    user.Username,
		"scopes": user.Role.Scopes(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the identity. It performs
// no I/O. An expired-but-otherwise-valid token always yields ErrTokenExpired,
// never ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrTokenInvalid
	}

	rawScopes, _ := claims["scopes"].([]interface{})
	scopes := make([]string, 0, len(rawScopes))
	for _, sc := range rawScopes {
		if str, ok := sc.(string); ok {
			scopes = append(scopes, str)
		}
	}

	return &domain.Identity{Subject: sub, Scopes: scopes}, nil
}
