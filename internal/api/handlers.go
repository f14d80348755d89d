package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romangod6/content-platform/internal/articles"
	"github.com/romangod6/content-platform/internal/hub"
)

type Handler struct {
	create *articles.CreateArticleHandler
	hub    *hub.Hub
}

func NewHandler(create *articles.CreateArticleHandler, notificationHub *hub.Hub) *Handler {
	return &Handler{
		create: create,
		hub:    notificationHub,
	}
}

// CreateArticle accepts an article submission, runs the creation workflow and
// notifies connected clients on success. The broadcast happens after the
// workflow commits and never fails the request.
func (h *Handler) CreateArticle(c *gin.Context) {
	var req articles.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, articles.Error{
			Code:    articles.ErrCodeValidation,
			Message: "Invalid request payload",
		})
		return
	}

	id, cerr := h.create.Handle(c.Request.Context(), req)
	if cerr != nil {
		status := http.StatusInternalServerError
		if cerr.Code == articles.ErrCodeValidation {
			status = http.StatusBadRequest
		}
		c.JSON(status, cerr)
		return
	}

	h.hub.Broadcast(hub.SignalUpdate)

	c.JSON(http.StatusOK, id.String())
}
