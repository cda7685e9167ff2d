// Package assist calls the hosted chat endpoint.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecocycle/server/core"
)

type Client struct {
	url  string
	http *http.Client
}

var _ core.Assistant = (*Client)(nil)

func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Reply(ctx context.Context, message, language string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"message":  message,
		"language": language,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assist endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode assist response: %w", err)
	}
	return body.Response, nil
}

// Canned is a fixed-answer assistant for tests and offline development.
type Canned struct {
	Answer string
}

var _ core.Assistant = (*Canned)(nil)

func (c *Canned) Reply(_ context.Context, _, _ string) (string, error) {
	if c.Answer == "" {
		return "Thanks for helping keep e-waste out of landfills!", nil
	}
	return c.Answer, nil
}
