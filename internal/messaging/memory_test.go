package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/romangod6/content-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPublisher_RecordsEvents(t *testing.T) {
	p := NewMemoryPublisher()

	event := models.ArticleCreatedEvent{ID: uuid.New(), CreatedOnUtc: time.Now().UTC()}
	require.NoError(t, p.Publish(context.Background(), event))

	events := p.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event, events[0])
}

func TestMemoryPublisher_FansOutToSubscribers(t *testing.T) {
	p := NewMemoryPublisher()
	sub := p.Subscribe(4)

	event := models.ArticleCreatedEvent{ID: uuid.New(), CreatedOnUtc: time.Now().UTC()}
	require.NoError(t, p.Publish(context.Background(), event))

	select {
	case got := <-sub:
		assert.Equal(t, event, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}
}

func TestMemoryPublisher_ClosedRejectsPublish(t *testing.T) {
	p := NewMemoryPublisher()
	sub := p.Subscribe(1)

	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), models.ArticleCreatedEvent{ID: uuid.New()})
	assert.Error(t, err)

	_, open := <-sub
	assert.False(t, open)

	// Closing twice is harmless
	assert.NoError(t, p.Close())
}
