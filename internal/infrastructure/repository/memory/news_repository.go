package memory

import (
	"context"
	"sync"

	"github.com/rainesports/site-api/internal/domain/news"
)

type NewsRepository struct {
	mu     sync.RWMutex
	items  []news.Item
	nextID int
}

func NewNewsRepository(seed []news.NewItem) *NewsRepository {
	r := &NewsRepository{nextID: 1}
	for _, in := range seed {
		_, _ = r.Create(context.Background(), in)
	}
	return r
}

func (r *NewsRepository) List(_ context.Context) ([]news.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Item, 0, len(r.items))
	out = append(out, r.items...)

	return out, nil
}

func (r *NewsRepository) GetByID(_ context.Context, id int) (news.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true, nil
		}
	}

	return news.Item{}, false, nil
}

func (r *NewsRepository) Create(_ context.Context, in news.NewItem) (news.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := news.Item{
		ID:          r.nextID,
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		PublishedAt: in.PublishedAt,
		Author:      in.Author,
	}
	r.nextID++
	r.items = append(r.items, item)

	return item, nil
}
