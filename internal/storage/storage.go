package storage

import (
	"context"

	"github.com/romangod6/content-platform/internal/models"
)

type Store interface {
	Initialize() error
	Close() error

	// Article operations
	CreateArticle(ctx context.Context, article *models.Article) error
}
