package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eshfaq-ux/foliochat/internal/analytics"
	"github.com/eshfaq-ux/foliochat/internal/fallback"
	"github.com/eshfaq-ux/foliochat/internal/intent"
	"github.com/eshfaq-ux/foliochat/internal/pipeline"
	"github.com/eshfaq-ux/foliochat/internal/profile"
	"github.com/eshfaq-ux/foliochat/internal/session"
	"github.com/eshfaq-ux/foliochat/internal/storage"
)

type fixedCompleter struct {
	text string
	err  error
}

func (f *fixedCompleter) Generate(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

type memStats struct {
	sessions int
	events   map[string]int
	intents  []storage.IntentCount
}

func (m *memStats) CountSessions() (int, error)        { return m.sessions, nil }
func (m *memStats) CountEvents(ev string) (int, error) { return m.events[ev], nil }
func (m *memStats) TopIntents(limit int) ([]storage.IntentCount, error) {
	return m.intents, nil
}

func newTestDeps(completer pipeline.Completer) Deps {
	p := profile.Default()
	return Deps{
		Assistant:  pipeline.New(p, completer, analytics.NopSink{}, nil),
		Profile:    p,
		Stats:      &memStats{},
		AdminToken: "admin-token",
	}
}

func postChat(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h := NewHandler(newTestDeps(nil))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("body = %v, want status=ok", body)
	}
}

func TestChat_GatewayAnswer(t *testing.T) {
	h := NewHandler(newTestDeps(&fixedCompleter{text: "Here are the projects."}))

	rr := postChat(t, h, `{"messages":[{"role":"user","content":"tell me about your projects"}],"sessionId":"01HZZZZZZZZZZZZZZZZZZZZZZZ"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Here are the projects." {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Intent != intent.Projects {
		t.Errorf("Intent = %q, want projects", resp.Intent)
	}
	if resp.SessionID != "01HZZZZZZZZZZZZZZZZZZZZZZZ" {
		t.Errorf("SessionID = %q, want the caller-provided id", resp.SessionID)
	}
	if resp.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
	if len(resp.Suggestions) == 0 {
		t.Error("Suggestions is empty")
	}
}

func TestChat_MintsSessionIDWhenAbsent(t *testing.T) {
	h := NewHandler(newTestDeps(nil))

	rr := postChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !session.Valid(resp.SessionID) {
		t.Errorf("SessionID = %q, not a valid session id", resp.SessionID)
	}
}

func TestChat_DegradedModeServesFallback(t *testing.T) {
	deps := newTestDeps(nil) // no completer configured
	h := NewHandler(deps)

	rr := postChat(t, h, `{"messages":[{"role":"user","content":"how do I contact you?"}]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp ChatResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	want := fallback.Respond(intent.Contact, deps.Profile)
	if resp.Message != want {
		t.Errorf("Message = %q, want the contact fallback", resp.Message)
	}
}

func TestChat_BadRequests(t *testing.T) {
	h := NewHandler(newTestDeps(nil))

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing messages", `{}`},
		{"empty messages", `{"messages":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postChat(t, h, tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestResume_ReturnsMarkdown(t *testing.T) {
	deps := newTestDeps(nil)
	h := NewHandler(deps)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("Content-Type = %q, want text/markdown", ct)
	}
	if !strings.Contains(rr.Body.String(), deps.Profile.Personal.Name) {
		t.Error("resume does not mention the owner")
	}
}

func TestStats_RequiresBearerToken(t *testing.T) {
	deps := newTestDeps(nil)
	deps.Stats = &memStats{
		sessions: 4,
		events:   map[string]int{analytics.EventMessageSent: 9, analytics.EventContactRequested: 2},
		intents:  []storage.IntentCount{{Intent: "projects", Count: 5}},
	}
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/analytics/stats", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/analytics/stats", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, want %d", rr.Code, http.StatusOK)
	}

	var stats analytics.Stats
	if err := json.NewDecoder(rr.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.TotalSessions != 4 || stats.TotalMessages != 9 || stats.ContactRequests != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

type memEvents struct {
	events    []storage.Event
	lastLimit int
}

func (m *memEvents) RecentEvents(limit int) ([]storage.Event, error) {
	m.lastLimit = limit
	return m.events, nil
}

func TestEvents_ReturnsRecentEvents(t *testing.T) {
	deps := newTestDeps(nil)
	lister := &memEvents{events: []storage.Event{{ID: "e1", SessionID: "s1", Event: analytics.EventMessageSent}}}
	deps.Events = lister
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/analytics/events?limit=10", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if lister.lastLimit != 10 {
		t.Errorf("limit = %d, want 10", lister.lastLimit)
	}
	var events []storage.Event
	if err := json.NewDecoder(rr.Body).Decode(&events); err != nil {
		t.Fatalf("decoding events: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Errorf("events = %+v", events)
	}
}

func TestEvents_InvalidLimit(t *testing.T) {
	h := NewHandler(newTestDeps(nil))

	req := httptest.NewRequest(http.MethodGet, "/analytics/events?limit=nope", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestStats_NotMountedWithoutToken(t *testing.T) {
	deps := newTestDeps(nil)
	deps.AdminToken = ""
	h := NewHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/analytics/stats", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
