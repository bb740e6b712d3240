// Package notify provides an HTTP client that posts import summaries to a
// configured webhook after each run.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Client posts import summaries to a webhook
type Client struct {
	webhookURL string
	httpClient *http.Client
	enabled    bool
}

// Config holds configuration for the notify client
type Config struct {
	WebhookURL string
	Enabled    bool
	Timeout    time.Duration
}

// ImportSummary is the payload posted after an import run
type ImportSummary struct {
	ImportRunID string    `json:"import_run_id"`
	BookKey     string    `json:"book_key"`
	Source      string    `json:"source"`
	Extracted   int       `json:"extracted"`
	New         int       `json:"new"`
	Settled     int       `json:"settled"`
	FinishedAt  time.Time `json:"finished_at"`
}

// NewClient creates a new notify client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{Timeout: timeout},
		enabled:    cfg.Enabled,
	}
}

// IsEnabled returns whether notifications are enabled
func (c *Client) IsEnabled() bool {
	return c.enabled && c.webhookURL != ""
}

// PostSummary posts one import summary. Failures are logged, not fatal: the
// import itself already succeeded.
func (c *Client) PostSummary(ctx context.Context, summary ImportSummary) error {
	if !c.IsEnabled() {
		return nil
	}

	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[Notify] Warning: webhook returned status %d", resp.StatusCode)
	}

	return nil
}
