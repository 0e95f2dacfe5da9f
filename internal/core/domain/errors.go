package domain

import "errors"

// Credential and token errors map to 401. ErrInvalidCredentials is returned
// for both unknown usernames and wrong passwords so a caller cannot enumerate
// accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Authorization errors map to 403.
var (
	ErrInsufficientScope = errors.New("insufficient scope")
	ErrNotOwner          = errors.New("not the resource owner")
)

// Resource errors.
var (
	ErrUserExists      = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotInCart   = errors.New("item not in cart")
)
