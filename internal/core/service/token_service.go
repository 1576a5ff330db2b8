package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// jwtClaims is the wire shape of a session token's payload.
type jwtClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. Tokens are
// stateless: once issued they stay valid until their embedded expiry, and
// refresh simply issues a new token without revoking the old one.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := &jwtClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks signature and structure and returns the embedded claims.
// Expiry is deliberately not checked here; callers pair this with IsExpired
// so an expired-but-authentic token can still be inspected.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, domain.ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &jwtClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	out := &ports.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (s *TokenService) IsExpired(token string) bool {
	exp, err := s.ExpirationOf(token)
	if err != nil {
		return true
	}
	return exp.Before(time.Now())
}

// ExpirationOf reads the exp claim without verifying the signature.
func (s *TokenService) ExpirationOf(token string) (time.Time, error) {
	claims := &jwtClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, domain.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, domain.ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}
