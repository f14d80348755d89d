package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	CreatedOnUtc time.Time `json:"createdOnUtc"`
}

// ArticleCreatedEvent is the message published to the broker after an
// article has been stored. Consumers live outside this service.
type ArticleCreatedEvent struct {
	ID           uuid.UUID `json:"id"`
	CreatedOnUtc time.Time `json:"createdOnUtc"`
}
