package ports

import (
	"context"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// CreateUserInput carries the data needed to register a new account.
type CreateUserInput struct {
	Username        string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Role            string
	ProfileImageURL string
	Bio             string
	DateOfBirth     *time.Time
}

// UpdateUserInput is a partial update: zero-value string fields and nil
// pointers leave the stored value untouched. Pointer fields distinguish
// "clear/replace" from "not supplied".
type UpdateUserInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Role            string
	IsActive        *bool
	ProfileImageURL *string
	Bio             *string
	DateOfBirth     *time.Time
}

// UserService defines account use cases.
type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByRole(ctx context.Context, role string) ([]*domain.User, error)
	Search(ctx context.Context, term string) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// Authenticate resolves the identifier as username or email and verifies
	// the password. Absent, inactive and wrong-password cases are
	// indistinguishable to the caller (ErrInvalidCredentials). On success the
	// user's last-login time is stamped as a side effect.
	Authenticate(ctx context.Context, usernameOrEmail, password string) (*domain.User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
}
