package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. An empty
// id on an authenticated route means the token carried no usable identity;
// reject with 401 even though the request passed the middleware.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
