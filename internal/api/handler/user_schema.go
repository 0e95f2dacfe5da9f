package handler

import (
	"time"

	"github.com/quickshop/store-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// updateUserRequest is the self-update payload. It has no Username field:
// the document key is immutable and payloads attempting to set it are
// rejected during strict decoding, before validation or authorization of the
// field values themselves.
type updateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
}

type userResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type userListResponse struct {
	Users []userResponse `json:"users"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		Role:      string(u.Role),
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toUserListResponse(users []*domain.User) userListResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return userListResponse{Users: out}
}
