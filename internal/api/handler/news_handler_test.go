package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
)

func testNews() *domain.News {
	return &domain.News{
		ID:            "64f0c0a2e4b0a1b2c3d4e5f6",
		Title:         "Budget approved",
		Content:       "The council approved the annual budget today.",
		Author:        "alice",
		Category:      "politics",
		Tags:          []string{"finance"},
		IsPublished:   true,
		PublishedDate: time.Now().UTC(),
	}
}

func TestNewsCreateDefaultsToPublished(t *testing.T) {
	svc := &stubNewsService{item: testNews()}
	h := NewNewsHandler(svc, zerolog.Nop())

	body := `{"title":"Budget approved","content":"The council approved the annual budget today.","author":"alice"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/news", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.createdWith == nil || !svc.createdWith.IsPublished {
		t.Fatalf("omitted isPublished should default to true: %+v", svc.createdWith)
	}
}

func TestNewsCreateHonorsExplicitUnpublished(t *testing.T) {
	svc := &stubNewsService{item: testNews()}
	h := NewNewsHandler(svc, zerolog.Nop())

	body := `{"title":"Draft piece","content":"Not ready for readers yet, still drafting.","author":"alice","isPublished":false}`
	c, _ := newTestContext(t, http.MethodPost, "/api/news", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if svc.createdWith == nil || svc.createdWith.IsPublished {
		t.Fatalf("explicit false was lost: %+v", svc.createdWith)
	}
}

func TestNewsCreateRejectsShortTitle(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{}, zerolog.Nop())

	body := `{"title":"Hi","content":"Long enough content for the rule.","author":"alice"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/news", body)

	err := h.Create(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestNewsCreateRejectsMalformedUserID(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{}, zerolog.Nop())

	body := `{"title":"Budget approved","content":"The council approved the annual budget today.","author":"alice","userId":"not-an-object-id"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/news", body)

	err := h.Create(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestNewsSearchRequiresTerm(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/news/search", "")
	err := h.Search(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestNewsGetByIDNotFoundPropagates(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{err: domain.ErrNewsNotFound}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/news/64f0c0a2e4b0a1b2c3d4e5f6", "")
	c.SetParamNames("id")
	c.SetParamValues("64f0c0a2e4b0a1b2c3d4e5f6")

	if err := h.GetByID(c); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("err = %v, want ErrNewsNotFound", err)
	}
}

func TestNewsUpdateForwardsTags(t *testing.T) {
	svc := &stubNewsService{item: testNews()}
	h := NewNewsHandler(svc, zerolog.Nop())

	body := `{"tags":[]}`
	c, _ := newTestContext(t, http.MethodPut, "/api/news/64f0c0a2e4b0a1b2c3d4e5f6", body)
	c.SetParamNames("id")
	c.SetParamValues("64f0c0a2e4b0a1b2c3d4e5f6")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := svc.updatedWith
	if got == nil || got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("empty tags should arrive non-nil and empty: %+v", got)
	}
}

func TestNewsDeleteNoContent(t *testing.T) {
	svc := &stubNewsService{}
	h := NewNewsHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodDelete, "/api/news/64f0c0a2e4b0a1b2c3d4e5f6", "")
	c.SetParamNames("id")
	c.SetParamValues("64f0c0a2e4b0a1b2c3d4e5f6")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestNewsGetPublished(t *testing.T) {
	svc := &stubNewsService{items: []*domain.News{testNews()}}
	h := NewNewsHandler(svc, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/news/published", "")
	if err := h.GetPublished(c); err != nil {
		t.Fatalf("published: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"title":"Budget approved"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
