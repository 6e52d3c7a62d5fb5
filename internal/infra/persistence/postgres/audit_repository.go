package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// CreateAuditLog appends an audit entry; old and new values are stored as jsonb.
func (repo *auditRepository) CreateAuditLog(ctx context.Context, log *entity.AuditLog) error {
	logM := &model.AuditLogModel{
		ID:         log.ID,
		ActorID:    log.ActorID,
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		OldValue:   datatypes.JSONMap(log.OldValue),
		NewValue:   datatypes.JSONMap(log.NewValue),
		IPAddress:  log.IPAddress,
		UserAgent:  log.UserAgent,
		CreatedAt:  log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID

	return nil
}
