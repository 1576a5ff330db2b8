package ports

import (
	"context"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// NewsRepository defines persistence operations for the news collection.
type NewsRepository interface {
	// FindAll returns every article, newest first.
	FindAll(ctx context.Context) ([]*domain.News, error)
	FindByID(ctx context.Context, id string) (*domain.News, error)
	// FindByCategory matches the category case-insensitively, newest first.
	FindByCategory(ctx context.Context, category string) ([]*domain.News, error)
	// FindPublished returns published articles ordered by publish date.
	FindPublished(ctx context.Context) ([]*domain.News, error)
	// Search matches term as a case-insensitive substring of title, content
	// or summary, or as an exact member of the tag list.
	Search(ctx context.Context, term string) ([]*domain.News, error)
	Insert(ctx context.Context, news *domain.News) (*domain.News, error)
	Update(ctx context.Context, id string, input UpdateNewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
