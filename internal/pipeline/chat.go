// Package pipeline orchestrates one chat turn: classify the message, compose
// a prompt, attempt the completion gateway, and fall back to canned answers
// when the gateway cannot deliver. A request always produces an answer;
// degradation is silent to the visitor and visible only in logs and metrics.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/eshfaq-ux/foliochat/internal/analytics"
	"github.com/eshfaq-ux/foliochat/internal/composer"
	"github.com/eshfaq-ux/foliochat/internal/fallback"
	"github.com/eshfaq-ux/foliochat/internal/gemini"
	"github.com/eshfaq-ux/foliochat/internal/intent"
	"github.com/eshfaq-ux/foliochat/internal/metrics"
	"github.com/eshfaq-ux/foliochat/internal/profile"
)

// Completer is the completion gateway seam. Implemented by *gemini.Client.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Source identifies where a reply's text came from.
type Source string

const (
	SourceGateway  Source = "gateway"
	SourceFallback Source = "fallback"
)

// Reply is the outcome of one chat turn. Message is always non-empty.
type Reply struct {
	Message    string
	Intent     intent.Intent
	Source     Source
	DurationMs int64
}

// Assistant wires the pipeline components. Completer may be nil when no API
// credential is configured; every request then goes straight to fallback
// (degraded but functional).
type Assistant struct {
	profile   *profile.Profile
	completer Completer
	sink      analytics.Sink
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New creates an Assistant. sink must be non-nil (use analytics.NopSink to
// discard); metrics may be nil.
func New(p *profile.Profile, completer Completer, sink analytics.Sink, m *metrics.Metrics) *Assistant {
	return &Assistant{
		profile:   p,
		completer: completer,
		sink:      sink,
		metrics:   m,
		logger:    slog.Default(),
	}
}

// Respond handles one chat turn. It is total: whatever happens inside, the
// returned Reply carries non-empty text. history must contain at least one
// turn (the API layer validates this).
func (a *Assistant) Respond(ctx context.Context, sessionID string, history []composer.Turn) Reply {
	start := time.Now()

	message := composer.LastUserMessage(history)
	detected := intent.Classify(message)

	a.emitEvents(sessionID, detected, message)

	reply := Reply{Intent: detected}
	if text, ok := a.tryGateway(ctx, detected, history); ok {
		reply.Message = text
		reply.Source = SourceGateway
	} else {
		reply.Message = fallback.Respond(detected, a.profile)
		reply.Source = SourceFallback
		if a.metrics != nil {
			a.metrics.RecordFallback()
		}
	}

	reply.DurationMs = time.Since(start).Milliseconds()
	if a.metrics != nil {
		a.metrics.RecordChatRequest(string(detected), time.Since(start))
	}

	a.logger.Debug("chat turn handled",
		"intent", detected,
		"source", reply.Source,
		"duration_ms", reply.DurationMs,
	)
	return reply
}

// tryGateway attempts one completion. Returns ok=false when the gateway is
// not configured, fails, is safety-filtered, or produces empty text.
func (a *Assistant) tryGateway(ctx context.Context, detected intent.Intent, history []composer.Turn) (string, bool) {
	if a.completer == nil {
		return "", false
	}

	prompt := composer.Compose(detected, history, a.profile)
	text, err := a.completer.Generate(ctx, prompt)
	if err != nil {
		reason := failureReason(err)
		a.logger.Warn("completion gateway failed, serving fallback", "reason", reason, "error", err)
		if a.metrics != nil {
			a.metrics.RecordGatewayFailure(reason)
		}
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		// Success shape but nothing usable; treated exactly like a failure.
		a.logger.Warn("completion gateway returned blank text, serving fallback")
		if a.metrics != nil {
			a.metrics.RecordGatewayFailure("empty_response")
		}
		return "", false
	}
	return text, true
}

// emitEvents records analytics for the turn. Record is non-blocking and
// sink failures are invisible here; the response path never waits on it.
func (a *Assistant) emitEvents(sessionID string, detected intent.Intent, message string) {
	now := time.Now()
	a.sink.Record(analytics.Event{
		SessionID: sessionID,
		Event:     analytics.EventMessageSent,
		Data:      map[string]string{"length": lengthBucket(message)},
		Timestamp: now,
	})
	a.sink.Record(analytics.Event{
		SessionID: sessionID,
		Event:     analytics.EventIntentDetected,
		Intent:    string(detected),
		Timestamp: now,
	})
	if detected == intent.Contact {
		a.sink.Record(analytics.Event{
			SessionID: sessionID,
			Event:     analytics.EventContactRequested,
			Intent:    string(detected),
			Timestamp: now,
		})
	}
}

// lengthBucket coarsens message length for analytics; raw visitor text is
// deliberately not recorded.
func lengthBucket(message string) string {
	switch n := len(message); {
	case n == 0:
		return "empty"
	case n < 50:
		return "short"
	case n < 200:
		return "medium"
	default:
		return "long"
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, gemini.ErrSafetyFiltered):
		return "safety_filtered"
	case errors.Is(err, gemini.ErrEmptyResponse):
		return "empty_response"
	default:
		return "request_failed"
	}
}
