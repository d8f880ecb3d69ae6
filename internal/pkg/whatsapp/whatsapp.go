package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
)

// Service sends WhatsApp messages through an HTTP gateway.
type Service interface {
	SendMessage(ctx context.Context, phone, message string) error
}

type serviceImpl struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

func NewService(cfg config.WhatsAppConfig) Service {
	return &serviceImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendMessage delivers a text message to a Brazilian phone number.
func (s *serviceImpl) SendMessage(ctx context.Context, phone, message string) error {
	// Skip sending if the gateway is not configured
	if s.cfg.BaseURL == "" {
		slog.Warn("WhatsApp gateway not configured, skipping message send", "phone", phone)
		return nil
	}

	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendMessageRequest{Phone: normalized, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call WhatsApp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("WhatsApp gateway returned %d: %s", resp.StatusCode, string(body))
	}

	slog.Info("WhatsApp message sent", "phone", normalized)
	return nil
}

// NormalizePhone converts a Brazilian phone number to international
// form: digits only, prefixed with the 55 country code when missing.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	switch {
	case len(number) == 10 || len(number) == 11:
		return "55" + number, nil
	case (len(number) == 12 || len(number) == 13) && strings.HasPrefix(number, "55"):
		return number, nil
	}
	return "", fmt.Errorf("invalid Brazilian phone number: %q", phone)
}
