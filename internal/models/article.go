package models

import (
	"time"

	"github.com/google/uuid"
)

// NewArticle creates a new article with a generated UUID and a UTC creation timestamp
func NewArticle(title, content string, tags []string) *Article {
	return &Article{
		ID:           uuid.New(),
		Title:        title,
		Content:      content,
		Tags:         tags,
		CreatedOnUtc: time.Now().UTC(),
	}
}

// CreatedEvent builds the event payload announcing this article.
func (a *Article) CreatedEvent() ArticleCreatedEvent {
	return ArticleCreatedEvent{
		ID:           a.ID,
		CreatedOnUtc: a.CreatedOnUtc,
	}
}
