// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository stores order events until they are published.
type OutboxRepository interface {
	// EnqueueEvent stores an event in the same transaction as the state change it describes.
	EnqueueEvent(ctx context.Context, event *entity.OutboxEvent) error

	// FetchUnpublished returns up to limit unpublished events, oldest first.
	FetchUnpublished(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)

	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error

	// MarkAttemptFailed increments the attempt counter and records the error.
	MarkAttemptFailed(ctx context.Context, id uuid.UUID, lastError string) error
}
