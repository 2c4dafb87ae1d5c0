package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/granitechief/avybrief/internal/infra/config"
	"github.com/granitechief/avybrief/pkg/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash-preview-09-2025"
)

// ErrMissingAPIKey is returned before any network call when the client was
// built without an API key.
var ErrMissingAPIKey = errors.New("gemini api key is not set")

// Part carries a single text fragment of a Gemini content block.
type Part struct {
	Text string `json:"text"`
}

// Content groups the parts of a prompt or a candidate answer.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the payload sent to the generateContent endpoint.
type GenerateContentRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateContentResponse captures the fields the service consumes.
type GenerateContentResponse struct {
	Candidates    []Candidate        `json:"candidates"`
	UsageMetadata metrics.TokenUsage `json:"usageMetadata"`
}

// FirstText returns the text of the first candidate part, if any.
func (r GenerateContentResponse) FirstText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}

// StatusError reports a non-2xx answer from the Gemini API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini request failed: status=%d body=%s", e.Code, e.Body)
}

// Client performs HTTP requests to the Gemini generateContent API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. An empty API key is tolerated here;
// GenerateContent reports it per call so the process can boot without one.
func NewClient(cfg config.LLMConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent triggers a sync Gemini call.
func (c *Client) GenerateContent(ctx context.Context, req GenerateContentRequest) (GenerateContentResponse, error) {
	var out GenerateContentResponse

	if c.apiKey == "" {
		return out, ErrMissingAPIKey
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("encode generate content request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return out, fmt.Errorf("build generate content request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return out, fmt.Errorf("request generate content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return out, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("read generate content response: %w", err)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode generate content response: %w", err)
	}
	return out, nil
}
