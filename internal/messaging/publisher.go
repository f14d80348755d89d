package messaging

import (
	"context"

	"github.com/romangod6/content-platform/internal/models"
)

// Publisher sends ArticleCreated events to downstream consumers. Publish
// returns once the transport has acknowledged the message.
type Publisher interface {
	Publish(ctx context.Context, event models.ArticleCreatedEvent) error
	Close() error
}
