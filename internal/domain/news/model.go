package news

// Item is a published news article. Items are immutable once created.
type Item struct {
	ID          int
	Title       string
	Excerpt     string
	Content     string
	ImageURL    string
	PublishedAt string
	Author      string
}
