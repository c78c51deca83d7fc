package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveEvent(t *testing.T, s *Store, sessionID, event, intent string) {
	t.Helper()
	err := s.SaveEvent(Event{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Event:     event,
		Intent:    intent,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("saving event: %v", err)
	}
}

func TestOpen_OnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("opening store in %s: %v", dir, err)
	}
	defer s.Close()

	saveEvent(t, s, "sess-1", "message_sent", "")
	n, err := s.CountEvents("message_sent")
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if n != 1 {
		t.Errorf("CountEvents = %d, want 1", n)
	}
}

func TestCountSessions_Distinct(t *testing.T) {
	s := openTestStore(t)
	saveEvent(t, s, "a", "message_sent", "")
	saveEvent(t, s, "a", "intent_detected", "skills")
	saveEvent(t, s, "b", "message_sent", "")

	n, err := s.CountSessions()
	if err != nil {
		t.Fatalf("counting sessions: %v", err)
	}
	if n != 2 {
		t.Errorf("CountSessions = %d, want 2", n)
	}
}

func TestTopIntents_OrderedByFrequency(t *testing.T) {
	s := openTestStore(t)
	for range 3 {
		saveEvent(t, s, "a", "intent_detected", "projects")
	}
	saveEvent(t, s, "a", "intent_detected", "contact")
	saveEvent(t, s, "a", "message_sent", "") // not counted

	got, err := s.TopIntents(10)
	if err != nil {
		t.Fatalf("top intents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Intent != "projects" || got[0].Count != 3 {
		t.Errorf("got[0] = %+v, want projects/3", got[0])
	}
	if got[1].Intent != "contact" || got[1].Count != 1 {
		t.Errorf("got[1] = %+v, want contact/1", got[1])
	}
}

func TestRecentEvents(t *testing.T) {
	s := openTestStore(t)
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		err := s.SaveEvent(Event{
			ID:        uuid.NewString(),
			SessionID: "s",
			Event:     "message_sent",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("saving: %v", err)
		}
	}

	got, err := s.RecentEvents(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !got[0].CreatedAt.After(got[2].CreatedAt) {
		t.Error("events not in newest-first order")
	}
}

func TestSaveEvent_DefaultsEmptyData(t *testing.T) {
	s := openTestStore(t)
	saveEvent(t, s, "s", "contact_requested", "contact")

	got, err := s.RecentEvents(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got[0].Data != "{}" {
		t.Errorf("Data = %q, want {}", got[0].Data)
	}
}
