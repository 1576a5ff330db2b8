package ports

import (
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// TokenClaims is the identity embedded in a session token. Validity is fully
// determined by signature and expiry at verification time; there is no
// server-side session state and no revocation list.
type TokenClaims struct {
	UserID    string
	Username  string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token carrying the user's id, username, email and role,
	// expiring a fixed duration from now.
	Issue(user *domain.User) (string, error)
	// Validate verifies signature and structure and returns the embedded
	// claims. It fails closed: any malformed or tampered token is an error.
	Validate(token string) (*TokenClaims, error)
	// IsExpired compares the embedded expiry to the current time without
	// requiring a valid signature.
	IsExpired(token string) bool
	// ExpirationOf extracts the expiry claim without validating the
	// signature. Used for display alongside issued tokens.
	ExpirationOf(token string) (time.Time, error)
}
