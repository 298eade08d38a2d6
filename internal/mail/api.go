package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIMailer posts messages to a Resend-style HTTP email API.
type APIMailer struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewAPIMailer(baseURL, apiKey, from string) *APIMailer {
	return &APIMailer{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (m *APIMailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      strings.ToLower(strings.TrimSpace(msg.To)),
		Subject: strings.TrimSpace(msg.Subject),
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
