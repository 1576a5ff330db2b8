package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/api/metrics"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// UserHandler serves the /api/user routes.
type UserHandler struct {
	users ports.UserService
	log   zerolog.Logger
}

func NewUserHandler(users ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// GetAll godoc
// @Summary      List all user accounts
// @Tags         user
// @Produce      json
// @Success      200 {array} domain.User
// @Router       /api/user [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.users.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID godoc
// @Summary      Fetch a user by id
// @Tags         user
// @Produce      json
// @Param        id path string true "user id"
// @Success      200 {object} domain.User
// @Failure      404 {object} echo.HTTPError
// @Router       /api/user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByUsername godoc
// @Summary      Fetch a user by username (case-insensitive)
// @Tags         user
// @Produce      json
// @Param        username path string true "username"
// @Success      200 {object} domain.User
// @Failure      404 {object} echo.HTTPError
// @Router       /api/user/username/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.users.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByRole godoc
// @Summary      List users holding a role
// @Tags         user
// @Produce      json
// @Param        role path string true "role name"
// @Success      200 {array} domain.User
// @Router       /api/user/role/{role} [get]
func (h *UserHandler) GetByRole(c echo.Context) error {
	users, err := h.users.GetByRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search godoc
// @Summary      Search users by name, username or email
// @Tags         user
// @Produce      json
// @Param        searchTerm query string true "term to match"
// @Success      200 {array} domain.User
// @Failure      400 {object} echo.HTTPError
// @Router       /api/user/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	term := c.QueryParam("searchTerm")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search term is required")
	}
	users, err := h.users.Search(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Register godoc
// @Summary      Create a user account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body body createUserRequest true "account details"
// @Success      201 {object} domain.User
// @Failure      400 {object} echo.HTTPError
// @Router       /api/user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
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
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Verify credentials and return the account without a token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "credentials"
// @Success      200 {object} domain.User
// @Failure      401 {object} echo.HTTPError
// @Router       /api/user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Partially update a user account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id path string true "user id"
// @Param        body body updateUserRequest true "fields to change"
// @Success      200 {object} domain.User
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), toUpdateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete a user account
// @Tags         user
// @Param        id path string true "user id"
// @Success      204 "deleted"
// @Failure      404 {object} echo.HTTPError
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CheckUsername godoc
// @Summary      Report whether a username is free to register
// @Tags         user
// @Produce      json
// @Param        username path string true "username"
// @Success      200 {boolean} bool
// @Router       /api/user/check-username/{username} [get]
func (h *UserHandler) CheckUsername(c echo.Context) error {
	available, err := h.users.IsUsernameAvailable(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, available)
}

// CheckEmail godoc
// @Summary      Report whether an email is free to register
// @Tags         user
// @Produce      json
// @Param        email path string true "email"
// @Success      200 {boolean} bool
// @Router       /api/user/check-email/{email} [get]
func (h *UserHandler) CheckEmail(c echo.Context) error {
	available, err := h.users.IsEmailAvailable(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, available)
}
