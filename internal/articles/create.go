package articles

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/romangod6/content-platform/internal/messaging"
	"github.com/romangod6/content-platform/internal/models"
	"github.com/romangod6/content-platform/internal/storage"
)

// CreateArticleHandler runs the creation sequence: validate, persist, publish.
type CreateArticleHandler struct {
	store     storage.Store
	publisher messaging.Publisher
}

func NewCreateArticleHandler(store storage.Store, publisher messaging.Publisher) *CreateArticleHandler {
	return &CreateArticleHandler{
		store:     store,
		publisher: publisher,
	}
}

// Handle validates the request, stores a new article and publishes an
// ArticleCreated event. It returns the generated article ID on success.
// A publish failure after a successful insert leaves the article in place.
func (h *CreateArticleHandler) Handle(ctx context.Context, req CreateArticleRequest) (uuid.UUID, *Error) {
	if verr := ValidateCreateArticle(req); verr != nil {
		return uuid.Nil, verr
	}

	article := models.NewArticle(req.Title, req.Content, req.Tags)

	if err := h.store.CreateArticle(ctx, article); err != nil {
		log.Printf("Failed to store article: %v", err)
		return uuid.Nil, internalError("Failed to store article")
	}

	if err := h.publisher.Publish(ctx, article.CreatedEvent()); err != nil {
		log.Printf("Failed to publish ArticleCreated for %s: %v", article.ID, err)
		return uuid.Nil, internalError("Failed to publish article created event")
	}

	return article.ID, nil
}
