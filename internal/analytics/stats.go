package analytics

import (
	"fmt"

	"github.com/eshfaq-ux/foliochat/internal/storage"
)

// Stats is the aggregate view served to the portfolio owner.
type Stats struct {
	TotalSessions   int            `json:"totalSessions"`
	TotalMessages   int            `json:"totalMessages"`
	TopIntents      map[string]int `json:"topIntents"`
	ContactRequests int            `json:"contactRequests"`
}

// StatsStore abstracts the aggregation queries. Implemented by storage.Store.
type StatsStore interface {
	CountSessions() (int, error)
	CountEvents(event string) (int, error)
	TopIntents(limit int) ([]storage.IntentCount, error)
}

const topIntentsLimit = 10

// ComputeStats aggregates recorded events into owner-facing statistics.
func ComputeStats(store StatsStore) (Stats, error) {
	sessions, err := store.CountSessions()
	if err != nil {
		return Stats{}, fmt.Errorf("counting sessions: %w", err)
	}
	messages, err := store.CountEvents(EventMessageSent)
	if err != nil {
		return Stats{}, fmt.Errorf("counting messages: %w", err)
	}
	contacts, err := store.CountEvents(EventContactRequested)
	if err != nil {
		return Stats{}, fmt.Errorf("counting contact requests: %w", err)
	}
	intents, err := store.TopIntents(topIntentsLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregating intents: %w", err)
	}

	top := make(map[string]int, len(intents))
	for _, ic := range intents {
		top[ic.Intent] = ic.Count
	}

	return Stats{
		TotalSessions:   sessions,
		TotalMessages:   messages,
		TopIntents:      top,
		ContactRequests: contacts,
	}, nil
}
