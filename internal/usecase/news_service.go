package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rainesports/site-api/internal/domain/news"
)

type NewsService struct {
	items news.Repository
}

func NewNewsService(items news.Repository) *NewsService {
	return &NewsService{items: items}
}

func (s *NewsService) ListNews(ctx context.Context) ([]news.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return items, nil
}

func (s *NewsService) GetNewsItem(ctx context.Context, id int) (news.Item, error) {
	item, exists, err := s.items.GetByID(ctx, id)
	if err != nil {
		return news.Item{}, fmt.Errorf("get news item: %w", err)
	}
	if !exists {
		return news.Item{}, fmt.Errorf("%w: news item=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *NewsService) CreateNewsItem(ctx context.Context, in news.NewItem) (news.Item, error) {
	if strings.TrimSpace(in.Title) == "" {
		return news.Item{}, fmt.Errorf("%w: news title is required", ErrInvalidInput)
	}

	item, err := s.items.Create(ctx, in)
	if err != nil {
		return news.Item{}, fmt.Errorf("create news item: %w", err)
	}

	return item, nil
}
