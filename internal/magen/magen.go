// Package magen talks to the Magen bot-defense verification service. The
// verdict is advisory: low scores are logged, never enforced. RSVP intake
// proceeds regardless of the outcome.
package magen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	url       string
	secretKey string
	http      *http.Client
}

func NewClient(url, secretKey string) *Client {
	return &Client{
		url:       url,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 5 * time.Second},
	}
}

// Enabled reports whether a verification endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

// Verdict is the verification outcome. Score runs 0.0 (bot) to 1.0 (human).
type Verdict struct {
	RequestID string  `json:"requestId"`
	Verdict   string  `json:"verdict"`
	Score     float64 `json:"score"`
}

type verifyRequest struct {
	RequestID string `json:"requestId"`
	Token     string `json:"token"`
	RemoteIP  string `json:"remoteIp,omitempty"`
}

// Verify sends the client token for scoring. Callers treat errors as an
// unavailable signal, not a rejection.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*Verdict, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("magen is not configured")
	}

	body, err := json.Marshal(verifyRequest{
		RequestID: uuid.NewString(),
		Token:     token,
		RemoteIP:  remoteIP,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secretKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("magen verify failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("magen verify returned %d", resp.StatusCode)
	}

	var v Verdict
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse magen response: %w", err)
	}
	return &v, nil
}
