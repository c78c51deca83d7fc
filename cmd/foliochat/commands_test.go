package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
	Auth   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
			Auth:   r.Header.Get("Authorization"),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":"not found"}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		token:      "test-token",
		httpClient: ts.server.Client(),
	}
}

var ctx = context.Background()

func TestAskCommand_PostsChatRequest(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /chat": `{"message":"Here you go","intent":"projects","sessionId":"01J8","suggestions":["Tell me more"]}`,
	})

	client := ts.client()

	req := map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "what have you built?"}},
	}
	resp, err := client.post(ctx, "/chat", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Message   string `json:"message"`
		Intent    string `json:"intent"`
		SessionID string `json:"sessionId"`
	}
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if result.Message != "Here you go" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Intent != "projects" {
		t.Errorf("intent = %q", result.Intent)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(ts.requests))
	}
	got := ts.requests[0]
	if got.Method != "POST" || got.Path != "/chat" {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
	if !strings.Contains(got.Body, "what have you built?") {
		t.Errorf("body = %q, missing question", got.Body)
	}
}

func TestStatsCommand_SendsBearerToken(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /analytics/stats": `{"totalSessions":3,"totalMessages":7,"topIntents":{"projects":4},"contactRequests":1}`,
	})

	client := ts.client()

	resp, err := client.get(ctx, "/analytics/stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stats struct {
		TotalSessions int `json:"totalSessions"`
	}
	if err := decodeJSON(resp, &stats); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if stats.TotalSessions != 3 {
		t.Errorf("totalSessions = %d, want 3", stats.TotalSessions)
	}

	if got := ts.requests[0].Auth; got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", got)
	}
}

func TestDecodeJSON_ErrorStatus(t *testing.T) {
	ts := newTestServer(t, nil)
	client := ts.client()

	resp, err := client.get(ctx, "/nope")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}

	var v map[string]any
	err = decodeJSON(resp, &v)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want status in message", err)
	}
}
