package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

// NewsService implements article use cases on top of the news repository.
type NewsService struct {
	repo ports.NewsRepository
	log  zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, log: log}
}

func (s *NewsService) GetAll(ctx context.Context) ([]*domain.News, error) {
	return s.repo.FindAll(ctx)
}

func (s *NewsService) GetByID(ctx context.Context, id string) (*domain.News, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) GetByCategory(ctx context.Context, category string) ([]*domain.News, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *NewsService) GetPublished(ctx context.Context) ([]*domain.News, error) {
	return s.repo.FindPublished(ctx)
}

func (s *NewsService) Search(ctx context.Context, term string) ([]*domain.News, error) {
	return s.repo.Search(ctx, term)
}

// Create stores a new article. The publish date defaults to the creation
// time when not supplied.
func (s *NewsService) Create(ctx context.Context, input ports.CreateNewsInput) (*domain.News, error) {
	now := time.Now().UTC()

	publishedDate := now
	if input.PublishedDate != nil {
		publishedDate = *input.PublishedDate
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	news := &domain.News{
		Title:         input.Title,
		Content:       input.Content,
		Author:        input.Author,
		UserID:        input.UserID,
		Category:      input.Category,
		Tags:          tags,
		IsPublished:   input.IsPublished,
		Summary:       input.Summary,
		ImageURL:      input.ImageURL,
		PublishedDate: publishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, news)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("news_id", created.ID).Str("title", created.Title).Bool("published", created.IsPublished).Msg("news created")
	return created, nil
}

func (s *NewsService) Update(ctx context.Context, id string, input ports.UpdateNewsInput) (*domain.News, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("news_id", id).Msg("news updated")
	return updated, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("news_id", id).Msg("news deleted")
	return nil
}
