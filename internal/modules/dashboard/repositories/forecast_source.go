package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/inventory"
)

// WebhookForecastSource reads forecasts from the prediction webhook.
// The webhook authenticates with a single custom header.
type WebhookForecastSource struct {
	url         string
	headerKey   string
	headerValue string
	httpClient  *http.Client
}

// NewWebhookForecastSource creates a webhook-backed forecast source
func NewWebhookForecastSource(url, headerKey, headerValue string, timeout time.Duration) *WebhookForecastSource {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WebhookForecastSource{
		url:         url,
		headerKey:   headerKey,
		headerValue: headerValue,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// webhookResponse is the envelope the webhook wraps rows in: {"data":{"data":[...]}}
type webhookResponse struct {
	Data struct {
		Data []webhookRow `json:"data"`
	} `json:"data"`
}

// webhookRow tolerates days_left arriving as a string or a number
type webhookRow struct {
	Item        string          `json:"item"`
	DaysLeft    json.RawMessage `json:"days_left"`
	OrderAmount float64         `json:"order_amount"`
}

// Forecasts fetches the current rows; order is whatever the webhook returns
func (s *WebhookForecastSource) Forecasts(ctx context.Context) ([]inventory.RawForecast, error) {
	if s.url == "" {
		return nil, fmt.Errorf("forecast webhook URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.headerKey != "" {
		req.Header.Set(s.headerKey, s.headerValue)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call forecast webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("forecast webhook error (status %d): %s", resp.StatusCode, string(body))
	}

	var payload webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast webhook response: %w", err)
	}

	out := make([]inventory.RawForecast, 0, len(payload.Data.Data))
	for _, row := range payload.Data.Data {
		out = append(out, inventory.RawForecast{
			Item:        row.Item,
			DaysLeft:    daysLeftLabel(row.DaysLeft),
			OrderAmount: row.OrderAmount,
		})
	}
	return out, nil
}

func daysLeftLabel(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// numbers and anything else keep their literal JSON text
	return string(raw)
}
