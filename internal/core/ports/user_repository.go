package ports

import (
	"context"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// UserRepository defines persistence operations for the users collection.
// Natural-key lookups (username, email) are case-insensitive exact matches.
type UserRepository interface {
	// FindAll returns every user, newest first.
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail matches the identifier against either natural key.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Search matches term as a case-insensitive substring of username,
	// first name, last name or email.
	Search(ctx context.Context, term string) ([]*domain.User, error)
	// Insert stores a new user and returns it with its generated id.
	// The unique indexes on username and email are the source of truth for
	// uniqueness; violations surface as ErrUsernameTaken / ErrEmailTaken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies the non-empty fields of input to the stored user and
	// returns the updated document.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// TouchLastLogin stamps the last-login time without touching updatedAt.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
