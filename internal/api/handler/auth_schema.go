package handler

import (
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

type validateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// authResponse is returned by register, login and refresh. The user's
// password digest is excluded by the domain type's JSON mapping.
type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

type validateTokenResponse struct {
	IsValid   bool      `json:"isValid"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
