package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultMNotifyURL = "https://apps.mnotify.net/smsapi"
	defaultSenderID   = "IntactGH"
	// mnotifySuccessCode is the body mNotify answers with for an accepted message.
	mnotifySuccessCode = "1000"
	maxResponseBytes   = 4 << 10
)

type mnotifySender struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	senderID string
}

// NewMNotifySender creates an SMSSender backed by the mNotify quick SMS API.
func NewMNotifySender(cfg config.SMSConfig) service.SMSSender {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMNotifyURL
	}
	senderID := cfg.SenderID
	if senderID == "" {
		senderID = defaultSenderID
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &mnotifySender{
		client:   &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		senderID: senderID,
	}
}

// SendSMS expects an already normalised 233XXXXXXXXX number.
func (s *mnotifySender) SendSMS(ctx context.Context, phone, message string) error {
	params := url.Values{
		"key":       {s.apiKey},
		"to":        {phone},
		"msg":       {message},
		"sender_id": {s.senderID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build sms request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call sms gateway")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read sms gateway response")
	}

	text := strings.TrimSpace(string(body))
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sms gateway returned status %d: %s", resp.StatusCode, text)
	}
	if !strings.Contains(text, mnotifySuccessCode) && !strings.Contains(strings.ToLower(text), "success") {
		return errors.Errorf("sms gateway rejected message: %s", text)
	}

	return nil
}

func newSMSChannel(cfg *config.Config, logger *slog.Logger) service.SMSSender {
	if cfg.Notification.SMS.APIKey == "" {
		logger.Info("SMS gateway not configured, SMS notifications disabled")

		return nil
	}

	return NewMNotifySender(cfg.Notification.SMS)
}
