package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eshfaq-ux/foliochat/internal/storage"
)

// memStore collects saved events in memory.
type memStore struct {
	mu     sync.Mutex
	events []storage.Event
	err    error
}

func (m *memStore) SaveEvent(e storage.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStoreSink_PersistsEvents(t *testing.T) {
	store := &memStore{}
	sink := NewStoreSink(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sink.Run(ctx)

	sink.Record(Event{SessionID: "s1", Event: EventMessageSent})
	sink.Record(Event{SessionID: "s1", Event: EventIntentDetected, Intent: "projects", Data: map[string]string{"message": "show projects"}})

	waitFor(t, func() bool { return store.count() == 2 })

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.events[0].SessionID != "s1" {
		t.Errorf("SessionID = %q", store.events[0].SessionID)
	}
	if store.events[1].Intent != "projects" {
		t.Errorf("Intent = %q, want projects", store.events[1].Intent)
	}
	if store.events[1].Data == "{}" {
		t.Error("event data not serialized")
	}
	if store.events[0].ID == "" || store.events[0].ID == store.events[1].ID {
		t.Error("events should get distinct non-empty ids")
	}
}

func TestStoreSink_RecordNeverBlocks(t *testing.T) {
	store := &memStore{}
	sink := NewStoreSink(store)
	// No Run: the buffer fills up and further events must be dropped, not block.

	done := make(chan struct{})
	go func() {
		for range defaultBufferSize * 2 {
			sink.Record(Event{SessionID: "s", Event: EventMessageSent})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked when buffer was full")
	}
}

func TestStoreSink_SwallowsPersistenceErrors(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	sink := NewStoreSink(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sink.Run(ctx)

	// Must not panic or surface anything to the caller.
	sink.Record(Event{SessionID: "s", Event: EventMessageSent})
	time.Sleep(50 * time.Millisecond)
}

func TestStoreSink_DrainsOnShutdown(t *testing.T) {
	store := &memStore{}
	sink := NewStoreSink(store)

	for range 10 {
		sink.Record(Event{SessionID: "s", Event: EventMessageSent})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Run(ctx) // returns after draining

	if store.count() != 10 {
		t.Errorf("persisted %d events after drain, want 10", store.count())
	}
}

// statsStore implements StatsStore with fixed values.
type statsStore struct {
	sessions int
	events   map[string]int
	intents  []storage.IntentCount
}

func (s *statsStore) CountSessions() (int, error)          { return s.sessions, nil }
func (s *statsStore) CountEvents(ev string) (int, error)   { return s.events[ev], nil }
func (s *statsStore) TopIntents(int) ([]storage.IntentCount, error) {
	return s.intents, nil
}

func TestComputeStats(t *testing.T) {
	store := &statsStore{
		sessions: 4,
		events:   map[string]int{EventMessageSent: 12, EventContactRequested: 3},
		intents: []storage.IntentCount{
			{Intent: "projects", Count: 5},
			{Intent: "contact", Count: 3},
		},
	}

	got, err := ComputeStats(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalSessions != 4 || got.TotalMessages != 12 || got.ContactRequests != 3 {
		t.Errorf("stats = %+v", got)
	}
	if got.TopIntents["projects"] != 5 {
		t.Errorf("TopIntents = %v", got.TopIntents)
	}
}
