// Package analytics records chat usage events. Recording is fire-and-forget:
// it never blocks the response path and its failures are swallowed (logged
// at most). Analytics completeness is not a correctness requirement.
package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eshfaq-ux/foliochat/internal/storage"
)

// Event names emitted by the chat pipeline.
const (
	EventMessageSent      = "message_sent"
	EventIntentDetected   = "intent_detected"
	EventContactRequested = "contact_requested"
)

// Event is one analytics record.
type Event struct {
	SessionID string            `json:"sessionId"`
	Event     string            `json:"event"`
	Intent    string            `json:"intent,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Sink accepts analytics events. Implementations must make Record safe for
// concurrent use and non-blocking.
type Sink interface {
	Record(e Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(Event) {}

// EventStore abstracts the persistence operations StoreSink needs.
// Implemented by storage.Store.
type EventStore interface {
	SaveEvent(e storage.Event) error
}

const defaultBufferSize = 256

// StoreSink persists events to SQLite through a buffered channel drained by
// a background worker. When the buffer is full, events are dropped rather
// than blocking the caller.
type StoreSink struct {
	store  EventStore
	ch     chan Event
	logger *slog.Logger
}

// NewStoreSink creates a StoreSink. Run must be started for events to be
// persisted.
func NewStoreSink(store EventStore) *StoreSink {
	return &StoreSink{
		store:  store,
		ch:     make(chan Event, defaultBufferSize),
		logger: slog.Default(),
	}
}

// Record enqueues the event for persistence. Never blocks; drops the event
// when the buffer is full.
func (s *StoreSink) Record(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	select {
	case s.ch <- e:
	default:
		s.logger.Debug("analytics buffer full, dropping event", "event", e.Event)
	}
}

// Run drains the event channel until ctx is cancelled. Persistence errors
// are logged and swallowed.
func (s *StoreSink) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.drain()
			return
		case e := <-s.ch:
			s.persist(e)
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (s *StoreSink) drain() {
	for {
		select {
		case e := <-s.ch:
			s.persist(e)
		default:
			return
		}
	}
}

func (s *StoreSink) persist(e Event) {
	data := "{}"
	if len(e.Data) > 0 {
		if b, err := json.Marshal(e.Data); err == nil {
			data = string(b)
		}
	}
	err := s.store.SaveEvent(storage.Event{
		ID:        uuid.NewString(),
		SessionID: e.SessionID,
		Event:     e.Event,
		Intent:    e.Intent,
		Data:      data,
		CreatedAt: e.Timestamp,
	})
	if err != nil {
		s.logger.Debug("failed to persist analytics event", "event", e.Event, "error", err)
	}
}
