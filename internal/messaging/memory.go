package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/romangod6/content-platform/internal/models"
)

// MemoryPublisher keeps published events in memory. It backs local runs
// without a broker and the workflow tests.
type MemoryPublisher struct {
	mu     sync.RWMutex
	events []models.ArticleCreatedEvent
	subs   []chan models.ArticleCreatedEvent
	closed bool
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Publish(_ context.Context, event models.ArticleCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New("publisher is closed")
	}

	p.events = append(p.events, event)

	for _, sub := range p.subs {
		select {
		case sub <- event:
		default:
			// Drop event if subscriber is busy
		}
	}

	return nil
}

// Subscribe returns a buffered channel receiving every event published after
// the call.
func (p *MemoryPublisher) Subscribe(buffer int) <-chan models.ArticleCreatedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan models.ArticleCreatedEvent, buffer)
	p.subs = append(p.subs, ch)
	return ch
}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []models.ArticleCreatedEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.ArticleCreatedEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *MemoryPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	for _, sub := range p.subs {
		close(sub)
	}
	p.subs = nil

	return nil
}
