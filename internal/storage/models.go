package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Event is a persisted analytics event row.
type Event struct {
	ID        string
	SessionID string
	Event     string // "message_sent", "intent_detected", "contact_requested"
	Intent    string // denormalized from data for aggregation; may be empty
	Data      string // JSON object stored as text
	CreatedAt time.Time
}

// IntentCount is one row of the top-intents aggregation.
type IntentCount struct {
	Intent string
	Count  int
}
