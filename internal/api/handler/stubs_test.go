package handler

import (
	"context"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// stubUserService returns canned values; err fields override per method group.
type stubUserService struct {
	user      *domain.User
	users     []*domain.User
	available bool
	err       error

	createdWith *ports.CreateUserInput
	updatedWith *ports.UpdateUserInput
	deletedID   string
}

func (s *stubUserService) GetAll(context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetByID(context.Context, string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) GetByUsername(context.Context, string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) GetByEmail(context.Context, string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) GetByRole(context.Context, string) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Search(context.Context, string) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.createdWith = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) Update(_ context.Context, _ string, input ports.UpdateUserInput) (*domain.User, error) {
	s.updatedWith = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func (s *stubUserService) Authenticate(context.Context, string, string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) IsUsernameAvailable(context.Context, string) (bool, error) {
	return s.available, s.err
}

func (s *stubUserService) IsEmailAvailable(context.Context, string) (bool, error) {
	return s.available, s.err
}

// stubNewsService mirrors stubUserService for articles.
type stubNewsService struct {
	item  *domain.News
	items []*domain.News
	err   error

	createdWith *ports.CreateNewsInput
	updatedWith *ports.UpdateNewsInput
	deletedID   string
}

func (s *stubNewsService) GetAll(context.Context) ([]*domain.News, error) {
	return s.items, s.err
}

func (s *stubNewsService) GetByID(context.Context, string) (*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubNewsService) GetByCategory(context.Context, string) ([]*domain.News, error) {
	return s.items, s.err
}

func (s *stubNewsService) GetPublished(context.Context) ([]*domain.News, error) {
	return s.items, s.err
}

func (s *stubNewsService) Search(context.Context, string) ([]*domain.News, error) {
	return s.items, s.err
}

func (s *stubNewsService) Create(_ context.Context, input ports.CreateNewsInput) (*domain.News, error) {
	s.createdWith = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubNewsService) Update(_ context.Context, _ string, input ports.UpdateNewsInput) (*domain.News, error) {
	s.updatedWith = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubNewsService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

// stubTokenService hands out a fixed token and canned claims.
type stubTokenService struct {
	token     string
	claims    *ports.TokenClaims
	expiresAt time.Time
	expired   bool
	issueErr  error
	valErr    error
}

func (s *stubTokenService) Issue(*domain.User) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return s.token, nil
}

func (s *stubTokenService) Validate(string) (*ports.TokenClaims, error) {
	if s.valErr != nil {
		return nil, s.valErr
	}
	return s.claims, nil
}

func (s *stubTokenService) IsExpired(string) bool { return s.expired }

func (s *stubTokenService) ExpirationOf(string) (time.Time, error) {
	return s.expiresAt, nil
}
