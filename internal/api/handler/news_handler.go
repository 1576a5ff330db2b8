package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/api/metrics"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// NewsHandler serves the /api/news routes. All of them sit behind the auth
// middleware; handlers can assume an authenticated caller.
type NewsHandler struct {
	news ports.NewsService
	log  zerolog.Logger
}

func NewNewsHandler(news ports.NewsService, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{news: news, log: log}
}

// GetAll godoc
// @Summary      List all articles
// @Tags         news
// @Produce      json
// @Success      200 {array} domain.News
// @Security     BearerAuth
// @Router       /api/news [get]
func (h *NewsHandler) GetAll(c echo.Context) error {
	items, err := h.news.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetByID godoc
// @Summary      Fetch an article by id
// @Tags         news
// @Produce      json
// @Param        id path string true "article id"
// @Success      200 {object} domain.News
// @Failure      404 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/news/{id} [get]
func (h *NewsHandler) GetByID(c echo.Context) error {
	item, err := h.news.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// GetPublished godoc
// @Summary      List published articles, newest first
// @Tags         news
// @Produce      json
// @Success      200 {array} domain.News
// @Security     BearerAuth
// @Router       /api/news/published [get]
func (h *NewsHandler) GetPublished(c echo.Context) error {
	items, err := h.news.GetPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetByCategory godoc
// @Summary      List articles in a category (case-insensitive)
// @Tags         news
// @Produce      json
// @Param        category path string true "category name"
// @Success      200 {array} domain.News
// @Security     BearerAuth
// @Router       /api/news/category/{category} [get]
func (h *NewsHandler) GetByCategory(c echo.Context) error {
	items, err := h.news.GetByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Search godoc
// @Summary      Search articles by title, content, summary or tag
// @Tags         news
// @Produce      json
// @Param        searchTerm query string true "term to match"
// @Success      200 {array} domain.News
// @Failure      400 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/news/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	term := c.QueryParam("searchTerm")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search term is required")
	}
	items, err := h.news.Search(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary      Create an article
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        body body createNewsRequest true "article details"
// @Success      201 {object} domain.News
// @Failure      400 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.news.Create(c.Request().Context(), toCreateNewsInput(req))
	if err != nil {
		return err
	}
	metrics.NewsCreatedTotal.WithLabelValues(strconv.FormatBool(item.IsPublished)).Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary      Partially update an article
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id path string true "article id"
// @Param        body body updateNewsRequest true "fields to change"
// @Success      200 {object} domain.News
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.news.Update(c.Request().Context(), c.Param("id"), toUpdateNewsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary      Delete an article
// @Tags         news
// @Param        id path string true "article id"
// @Success      204 "deleted"
// @Failure      404 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.news.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
