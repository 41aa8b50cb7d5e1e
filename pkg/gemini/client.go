package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

var (
	ErrDisabled      = fmt.Errorf("assistant is disabled")
	ErrEmptyResponse = fmt.Errorf("model returned no candidates")
)

// Turn is one exchange in a conversation, role "user" or "model".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Client calls the Gemini generateContent REST API.
// If no API key is configured, the client is disabled and Complete
// returns ErrDisabled.
type Client struct {
	cfg     Config
	http    *http.Client
	enabled bool
}

// NewFromConfig creates a new assistant client from the application
// configuration. Without an API key the client no-ops.
func NewFromConfig(cfg config.AssistantConfig) *Client {
	c := FromCentralConfig(cfg)
	return New(c)
}

func New(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout()},
		enabled: cfg.APIKey != "",
	}
}

// IsEnabled reports whether the client has an API key configured.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Complete sends the system instruction plus conversation turns and returns
// the model's reply text.
func (c *Client) Complete(ctx context.Context, system string, turns []Turn) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	req := GenerateRequest{
		Contents: make([]Content, 0, len(turns)),
	}
	if system != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: system}}}
	}
	for _, t := range turns {
		role := t.Role
		if role != "model" {
			role = "user"
		}
		req.Contents = append(req.Contents, Content{
			Role:  role,
			Parts: []Part{{Text: t.Text}},
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out GenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if out.Error != nil {
		return "", fmt.Errorf("gemini API error %d (%s): %s", out.Error.Code, out.Error.Status, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
