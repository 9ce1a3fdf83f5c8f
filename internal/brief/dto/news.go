package dto

// NewsItem is one normalized feed entry handed to the summarizer.
type NewsItem struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	PublishedDate string `json:"publishedDate"`
}

// UpdateResult reports a finished pipeline run.
type UpdateResult struct {
	UpdatedAt string `json:"updatedAt"`
	Count     int    `json:"count"`
}
