package domain

import (
	"errors"
	"time"
)

const (
	RoleUser   = "User"
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username is already taken")
var ErrEmailTaken = errors.New("email is already registered")
var ErrInvalidCredentials = errors.New("invalid username/email or password")
var ErrAccountInactive = errors.New("user account is deactivated")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the closed set accepted by the API.
// The role field is data, not authorisation: no route is gated on it.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// User models a registered account. PasswordHash is never serialised.
type User struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"isActive"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
}
