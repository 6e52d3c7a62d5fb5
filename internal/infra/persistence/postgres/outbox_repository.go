package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// EnqueueEvent stores an event; callers pass the transaction-bound repository.
func (repo *outboxRepository) EnqueueEvent(ctx context.Context, event *entity.OutboxEvent) error {
	eventM := &model.OutboxEventModel{
		ID:          event.ID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     datatypes.JSON(event.Payload),
		CreatedAt:   event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue outbox event")
	}

	return nil
}

// FetchUnpublished skips rows locked by another relay, so several relays can run side by side.
func (repo *outboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.OutboxEvent{
			ID:          eventM.ID,
			EventType:   eventM.EventType,
			AggregateID: eventM.AggregateID,
			Payload:     []byte(eventM.Payload),
			Attempts:    eventM.Attempts,
			LastError:   eventM.LastError,
			PublishedAt: eventM.PublishedAt,
			CreatedAt:   eventM.CreatedAt,
		})
	}

	return events, nil
}

func (repo *outboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Update("published_at", publishedAt).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbox event published")
	}

	return nil
}

// MarkAttemptFailed increments the attempt counter and records the error.
func (repo *outboxRepository) MarkAttemptFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to record outbox failure")
	}

	return nil
}
