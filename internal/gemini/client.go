// Package gemini is the boundary client for the remote text-generation
// service. A single request is made per completion and there are no
// retries; callers fall back to canned responses instead of waiting.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 8 * time.Second

	defaultTemperature     = 0.7
	defaultTopP            = 0.95
	defaultTopK            = 40
	defaultMaxOutputTokens = 1024
)

// ErrSafetyFiltered is returned when the service declined to generate due to
// its content policy.
var ErrSafetyFiltered = errors.New("generation blocked by safety filter")

// ErrEmptyResponse is returned on a 2xx response that carries no usable
// generated text.
var ErrEmptyResponse = errors.New("empty generation response")

// RequestError covers transport failures and non-2xx responses. Status is 0
// when the request never produced an HTTP response.
type RequestError struct {
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation request failed (HTTP %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client calls the generateContent endpoint for a single configured model.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with the default model and timeout. The API key
// must be non-empty; callers that have no key should not construct a client
// at all and route straight to fallback responses.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom base URL (for
// testing).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithModel overrides the generation model.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// Generate sends one completion request for the composed prompt and returns
// the generated text. Failure modes are distinguished for the caller:
// *RequestError for transport/non-2xx, ErrSafetyFiltered when the service
// filtered the content, ErrEmptyResponse for any other unusable success.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     defaultTemperature,
			TopP:            defaultTopP,
			TopK:            defaultTopK,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
		SafetySettings: defaultSafetySettings,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &RequestError{Err: fmt.Errorf("marshaling request: %w", err)}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &RequestError{Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &RequestError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(respBody))),
		}
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", ErrEmptyResponse
	}

	return extractText(gen)
}

// extractText pulls the generated text out of a 2xx response, mapping the
// ways a success payload can still be unusable.
func extractText(gen generateResponse) (string, error) {
	if gen.PromptFeedback != nil && gen.PromptFeedback.BlockReason != "" {
		return "", ErrSafetyFiltered
	}
	if len(gen.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	cand := gen.Candidates[0]
	text := joinParts(cand.Content)
	if strings.TrimSpace(text) == "" {
		if cand.FinishReason == "SAFETY" {
			return "", ErrSafetyFiltered
		}
		return "", ErrEmptyResponse
	}
	return text, nil
}

func joinParts(c *content) string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range c.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
