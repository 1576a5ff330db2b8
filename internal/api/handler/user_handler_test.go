package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
)

func TestUserSearchRequiresTerm(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/user/search", "")
	err := h.Search(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestUserSearchReturnsMatches(t *testing.T) {
	users := &stubUserService{users: []*domain.User{testUser()}}
	h := NewUserHandler(users, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/user/search?searchTerm=ali", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserGetByIDNotFoundPropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/api/user/507f1f77bcf86cd799439099", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439099")

	if err := h.GetByID(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserRegisterCreated(t *testing.T) {
	users := &stubUserService{user: testUser()}
	h := NewUserHandler(users, zerolog.Nop())

	body := `{"username":"alice","email":"alice@example.com","password":"secret1","firstName":"Alice","lastName":"Smith","role":"Editor"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/user/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if users.createdWith == nil || users.createdWith.Role != domain.RoleEditor {
		t.Fatalf("service did not receive role: %+v", users.createdWith)
	}
}

func TestUserRegisterRejectsUnknownRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, zerolog.Nop())

	body := `{"username":"alice","email":"alice@example.com","password":"secret1","firstName":"Alice","lastName":"Smith","role":"Owner"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/user/register", body)

	err := h.Register(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
}

func TestUserUpdatePassesPointerFields(t *testing.T) {
	users := &stubUserService{user: testUser()}
	h := NewUserHandler(users, zerolog.Nop())

	body := `{"isActive":false,"bio":""}`
	c, _ := newTestContext(t, http.MethodPut, "/api/user/507f1f77bcf86cd799439011", body)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := users.updatedWith
	if got == nil || got.IsActive == nil || *got.IsActive {
		t.Fatalf("isActive not forwarded: %+v", got)
	}
	if got.Bio == nil || *got.Bio != "" {
		t.Fatalf("empty bio should clear, got %+v", got.Bio)
	}
	if got.ProfileImageURL != nil {
		t.Fatalf("absent field should stay nil, got %+v", got.ProfileImageURL)
	}
}

func TestUserDeleteNoContent(t *testing.T) {
	users := &stubUserService{}
	h := NewUserHandler(users, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodDelete, "/api/user/507f1f77bcf86cd799439011", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if users.deletedID != "507f1f77bcf86cd799439011" {
		t.Fatalf("deleted id = %q", users.deletedID)
	}
}

func TestUserCheckUsernameReturnsBool(t *testing.T) {
	h := NewUserHandler(&stubUserService{available: true}, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/user/check-username/alice", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.CheckUsername(c); err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "true" {
		t.Fatalf("body = %q, want true", got)
	}
}

func TestUserCheckEmailTaken(t *testing.T) {
	h := NewUserHandler(&stubUserService{available: false}, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/api/user/check-email/alice@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")

	if err := h.CheckEmail(c); err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "false" {
		t.Fatalf("body = %q, want false", got)
	}
}
