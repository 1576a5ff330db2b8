package handler

import "time"

// --- Request types ---
// Field bounds mirror the contract the API has always enforced; see the
// custom "username" rule in validator.go.

type createUserRequest struct {
	Username        string     `json:"username"        validate:"required,min=3,max=50,username"`
	Email           string     `json:"email"           validate:"required,email,max=255"`
	Password        string     `json:"password"        validate:"required,min=6,max=100"`
	FirstName       string     `json:"firstName"       validate:"required,max=100"`
	LastName        string     `json:"lastName"        validate:"required,max=100"`
	Role            string     `json:"role"            validate:"omitempty,oneof=User Admin Editor"`
	ProfileImageURL string     `json:"profileImageUrl" validate:"omitempty,url"`
	Bio             string     `json:"bio"             validate:"max=1000"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
}

type updateUserRequest struct {
	Username        string     `json:"username"        validate:"omitempty,min=3,max=50,username"`
	Email           string     `json:"email"           validate:"omitempty,email,max=255"`
	FirstName       string     `json:"firstName"       validate:"omitempty,max=100"`
	LastName        string     `json:"lastName"        validate:"omitempty,max=100"`
	Role            string     `json:"role"            validate:"omitempty,oneof=User Admin Editor"`
	IsActive        *bool      `json:"isActive"`
	ProfileImageURL *string    `json:"profileImageUrl" validate:"omitempty,url"`
	Bio             *string    `json:"bio"             validate:"omitempty,max=1000"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required,max=255"`
	Password        string `json:"password"        validate:"required,max=100"`
}
