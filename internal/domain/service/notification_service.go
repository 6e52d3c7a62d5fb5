package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// EmailMessage is one outbound email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailSender delivers transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) error
}

// SMSSender delivers transactional SMS.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}
