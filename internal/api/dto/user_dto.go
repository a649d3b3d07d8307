package dto

import (
	"time"

	"github.com/spec-kit/user-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	NationalID string  `json:"national_id"`
	BirthDate  *string `json:"birth_date,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the standard response for auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewTokenResponse wraps an issued bearer token.
func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}

// UserResponse is the outbound account representation. The password hash is
// never part of it.
type UserResponse struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	NationalID string     `json:"national_id"`
	BirthDate  *string    `json:"birth_date,omitempty"`
	Status     string     `json:"status"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// FromUser maps a domain account to its response shape.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		NationalID: u.NationalID,
		BirthDate:  u.BirthDate,
		Status:     string(u.Status),
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastLogin:  u.LastLogin,
	}
}

// FromUsers maps a list of accounts.
func FromUsers(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
