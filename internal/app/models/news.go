package models

// NewsArticle is an item on the campus news feed.
type NewsArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Content  string `json:"content,omitempty"`
	ReadTime string `json:"readTime"`
}
