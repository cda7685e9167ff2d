// Package inference calls the hosted image-classification endpoint. The
// model itself is a black box; this client only does the multipart upload
// and decodes the detection payload.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ecocycle/server/core"
)

type Client struct {
	baseURL string
	apiKey  string
	modelID string
	http    *http.Client
}

var _ core.Classifier = (*Client)(nil)

func New(baseURL, apiKey, modelID string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		modelID: modelID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Classify(ctx context.Context, image []byte, filename string) (*core.Detection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	url := fmt.Sprintf("%s/%s?api_key=%s", c.baseURL, c.modelID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, core.ErrNoItemDetected
	default:
		return nil, fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	detection := &core.Detection{}
	if err := json.NewDecoder(resp.Body).Decode(detection); err != nil {
		return nil, fmt.Errorf("failed to decode detection: %w", err)
	}
	if detection.Name == "" {
		return nil, core.ErrNoItemDetected
	}
	return detection, nil
}
