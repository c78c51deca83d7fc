// Package api implements the public HTTP surface: the chat endpoint, health
// probe, resume export, and the bearer-protected analytics routes.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eshfaq-ux/foliochat/internal/analytics"
	"github.com/eshfaq-ux/foliochat/internal/composer"
	"github.com/eshfaq-ux/foliochat/internal/intent"
	"github.com/eshfaq-ux/foliochat/internal/metrics"
	"github.com/eshfaq-ux/foliochat/internal/pipeline"
	"github.com/eshfaq-ux/foliochat/internal/profile"
	"github.com/eshfaq-ux/foliochat/internal/resume"
	"github.com/eshfaq-ux/foliochat/internal/session"
	"github.com/eshfaq-ux/foliochat/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

// chatTimeout bounds one turn end to end, including the gateway call.
const chatTimeout = 15 * time.Second

// EventLister pages through recorded analytics events, newest first.
// Implemented by storage.Store.
type EventLister interface {
	RecentEvents(limit int) ([]storage.Event, error)
}

// Deps holds everything the HTTP layer needs. Metrics may be nil; the
// /metrics route is mounted only when it is set. AdminToken guards the
// analytics routes, which are not mounted when the token is empty. Events
// may be nil; /analytics/events then answers with an empty list.
type Deps struct {
	Assistant  *pipeline.Assistant
	Profile    *profile.Profile
	Stats      analytics.StatsStore
	Events     EventLister
	Metrics    *metrics.Metrics
	AdminToken string
}

// ChatRequest is the wire format of POST /chat. SessionID is optional; a new
// one is minted when absent.
type ChatRequest struct {
	Messages  []composer.Turn `json:"messages"`
	SessionID string          `json:"sessionId,omitempty"`
}

// ChatResponse is the wire format of a successful chat turn.
type ChatResponse struct {
	Message     string        `json:"message"`
	Intent      intent.Intent `json:"intent"`
	SessionID   string        `json:"sessionId"`
	Timestamp   string        `json:"timestamp"`
	Suggestions []string      `json:"suggestions"`
}

// NewHandler builds the chi router for the public API.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Post("/chat", handleChat(deps))
	r.Get("/resume", handleResume(deps))

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	if deps.AdminToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(deps.AdminToken))
			r.Get("/analytics/stats", handleStats(deps))
			r.Get("/analytics/events", handleEvents(deps))
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		if len(req.Messages) == 0 {
			httpError(w, http.StatusBadRequest, "messages is required and must not be empty")
			return
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = session.New()
		}

		ctx, cancel := context.WithTimeout(r.Context(), chatTimeout)
		defer cancel()

		// A visitor should never see a blank chat window. If anything below
		// panics, answer with the bare contact card instead of a 500.
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("chat handler panicked, serving contact card", "panic", rec)
				writeChatResponse(w, ChatResponse{
					Message:     emergencyReply(deps.Profile),
					Intent:      intent.General,
					SessionID:   sessionID,
					Timestamp:   time.Now().UTC().Format(time.RFC3339),
					Suggestions: intent.SuggestionsFor(intent.General),
				})
			}
		}()

		reply := deps.Assistant.Respond(ctx, sessionID, req.Messages)

		writeChatResponse(w, ChatResponse{
			Message:     reply.Message,
			Intent:      reply.Intent,
			SessionID:   sessionID,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Suggestions: intent.SuggestionsFor(reply.Intent),
		})
	}
}

func handleResume(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprint(w, resume.Markdown(deps.Profile))
	}
}

func handleStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := analytics.ComputeStats(deps.Stats)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "computing stats: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func handleEvents(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				httpError(w, http.StatusBadRequest, "invalid limit %q", v)
				return
			}
			if n > 500 {
				n = 500
			}
			limit = n
		}

		events := []storage.Event{}
		if deps.Events != nil {
			var err error
			events, err = deps.Events.RecentEvents(limit)
			if err != nil {
				httpError(w, http.StatusInternalServerError, "listing events: %v", err)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}

func writeChatResponse(w http.ResponseWriter, resp ChatResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// emergencyReply is the last-resort answer when the whole pipeline is
// unavailable. Plain contact facts, nothing generated.
func emergencyReply(p *profile.Profile) string {
	return fmt.Sprintf("I'm having trouble responding right now. You can reach %s directly at %s or %s.",
		p.Personal.Name, p.Personal.Email, p.Personal.Phone)
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf(format, args...)})
}
