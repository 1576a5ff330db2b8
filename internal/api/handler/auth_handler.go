package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/api/metrics"
	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// AuthHandler serves the /api/auth routes: registration, login, token
// validation and refresh, and the authenticated profile.
type AuthHandler struct {
	users  ports.UserService
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthHandler(users ports.UserService, tokens ports.TokenService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, log: log}
}

// Register godoc
// @Summary      Register a new account and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body createUserRequest true "account details"
// @Success      201 {object} authResponse
// @Failure      400 {object} echo.HTTPError
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.Inc()

	resp, err := h.issue(user, "register")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Authenticate with username or email and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "credentials"
// @Success      200 {object} authResponse
// @Failure      401 {object} echo.HTTPError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	resp, err := h.issue(user, "login")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProfile godoc
// @Summary      Return the authenticated user's account
// @Tags         auth
// @Produce      json
// @Success      200 {object} domain.User
// @Failure      401 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/auth/profile [get]
func (h *AuthHandler) GetProfile(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}
	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the authenticated user's account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body updateUserRequest true "fields to change"
// @Success      200 {object} domain.User
// @Failure      401 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), id, toUpdateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ValidateToken godoc
// @Summary      Check a token's signature and expiry and return its claims
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body validateTokenRequest true "token to check"
// @Success      200 {object} validateTokenResponse
// @Failure      400 {object} echo.HTTPError
// @Router       /api/auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	var req validateTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := h.tokens.Validate(req.Token)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrInvalidToken.Error())
	}
	if h.tokens.IsExpired(req.Token) {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrTokenExpired.Error())
	}

	return c.JSON(http.StatusOK, validateTokenResponse{
		IsValid:   true,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt,
	})
}

// Refresh godoc
// @Summary      Issue a fresh token for the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200 {object} authResponse
// @Failure      401 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}
	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return domain.ErrAccountInactive
	}

	resp, err := h.issue(user, "refresh")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// issue signs a token for the user and shapes the shared auth response.
func (h *AuthHandler) issue(user *domain.User, grant string) (*authResponse, error) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return nil, err
	}
	expiresAt, err := h.tokens.ExpirationOf(token)
	if err != nil {
		return nil, err
	}
	metrics.TokensIssuedTotal.WithLabelValues(grant).Inc()
	return &authResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
