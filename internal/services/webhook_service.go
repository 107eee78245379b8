package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bodegamart/internal/config"
	"bodegamart/internal/models"
)

const (
	ReplenishmentEventSingle = "single"
	ReplenishmentEventMulti  = "multi"
)

// ReplenishmentEventEntry is one created request enriched with the display
// fields the downstream automation needs.
type ReplenishmentEventEntry struct {
	*models.ReplenishmentRequest
	ProductName   string `json:"product_name"`
	SupplierPhone string `json:"supplier_phone"`
}

// ReplenishmentCreatedEvent is the payload relayed to the automation webhook
// after a replenishment request (or batch) is created.
type ReplenishmentCreatedEvent struct {
	Type       string                     `json:"type"`
	Request    *ReplenishmentEventEntry   `json:"request,omitempty"`
	Requests   []*ReplenishmentEventEntry `json:"requests,omitempty"`
	Profile    *models.Profile            `json:"profile"`
	AdminPhone string                     `json:"admin_phone"`
}

// WebhookService relays events to the external workflow-automation webhook.
// Delivery is best effort: callers log failures and move on, nothing is
// retried and nothing is surfaced to the user.
type WebhookService interface {
	Enabled() bool
	NotifyReplenishmentCreated(ctx context.Context, event *ReplenishmentCreatedEvent) error
}

type webhookService struct {
	url        string
	secret     string
	httpClient *http.Client
}

func NewWebhookService(cfg config.WebhookConfig) WebhookService {
	return &webhookService{
		url:    cfg.URL,
		secret: cfg.Secret,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *webhookService) Enabled() bool {
	return s.url != ""
}

func (s *webhookService) NotifyReplenishmentCreated(ctx context.Context, event *ReplenishmentCreatedEvent) error {
	if !s.Enabled() {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set("X-Webhook-Signature", s.sign(payload))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

func (s *webhookService) sign(body []byte) string {
	hash := hmac.New(sha256.New, []byte(s.secret))
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
