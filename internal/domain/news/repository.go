package news

import "context"

type NewItem struct {
	Title       string
	Excerpt     string
	Content     string
	ImageURL    string
	PublishedAt string
	Author      string
}

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int) (Item, bool, error)
	Create(ctx context.Context, in NewItem) (Item, error)
}
