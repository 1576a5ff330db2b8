package ports

import (
	"context"
	"time"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// CreateNewsInput carries the data needed to create an article.
type CreateNewsInput struct {
	Title         string
	Content       string
	Author        string
	UserID        string
	Category      string
	Tags          []string
	IsPublished   bool
	Summary       string
	ImageURL      string
	PublishedDate *time.Time // nil = publish date defaults to creation time
}

// UpdateNewsInput is a partial update with the same non-empty-only rule as
// UpdateUserInput. A nil Tags slice means "leave tags alone"; an empty
// non-nil slice clears them.
type UpdateNewsInput struct {
	Title         string
	Content       string
	Author        string
	Category      string
	Tags          []string
	IsPublished   *bool
	Summary       string
	ImageURL      *string
	PublishedDate *time.Time
}

// NewsService defines article use cases.
type NewsService interface {
	GetAll(ctx context.Context) ([]*domain.News, error)
	GetByID(ctx context.Context, id string) (*domain.News, error)
	GetByCategory(ctx context.Context, category string) ([]*domain.News, error)
	GetPublished(ctx context.Context) ([]*domain.News, error)
	Search(ctx context.Context, term string) ([]*domain.News, error)
	Create(ctx context.Context, input CreateNewsInput) (*domain.News, error)
	Update(ctx context.Context, id string, input UpdateNewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
