package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockRepository implements repository.StockRepository with single-row conditional updates.
// Postgres row locks taken by each UPDATE serialise concurrent reservations on the same row.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// FindByVariants returns every stock row of the variants, most available first.
func (repo *stockRepository) FindByVariants(ctx context.Context, variantIDs []uuid.UUID) ([]*entity.StockRecord, error) {
	if len(variantIDs) == 0 {
		return []*entity.StockRecord{}, nil
	}

	var levels []*model.StockLevelModel
	if err := repo.db.WithContext(ctx).
		Where("variant_id IN ?", variantIDs).
		Order("quantity - reserved DESC").
		Find(&levels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock levels")
	}

	records := make([]*entity.StockRecord, 0, len(levels))
	for _, level := range levels {
		records = append(records, toStockDomain(level))
	}

	return records, nil
}

// CreateStockRecord persists a new stock row.
func (repo *stockRepository) CreateStockRecord(ctx context.Context, record *entity.StockRecord) error {
	levelM := fromStockDomain(record)

	if err := repo.db.WithContext(ctx).Create(levelM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrStockCountersViolated
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock level")
	}

	record.ID = levelM.ID
	record.UpdatedAt = levelM.UpdatedAt

	return nil
}

// TryReserve increments reserved only while enough units remain available.
func (repo *stockRepository) TryReserve(ctx context.Context, variantID, locationID uuid.UUID, qty int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("variant_id = ? AND location_id = ? AND quantity - reserved >= ?", variantID, locationID, qty).
		Update("reserved", gorm.Expr("reserved + ?", qty))

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve stock")
	}

	return result.RowsAffected == 1, nil
}

// Release returns reserved units to the available pool.
func (repo *stockRepository) Release(ctx context.Context, variantID, locationID uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("variant_id = ? AND location_id = ? AND reserved >= ?", variantID, locationID, qty).
		Update("reserved", gorm.Expr("reserved - ?", qty))

	return repo.checkCounterUpdate(ctx, result, variantID, locationID, "failed to release stock")
}

// Commit converts reserved units into shipped units.
func (repo *stockRepository) Commit(ctx context.Context, variantID, locationID uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("variant_id = ? AND location_id = ? AND reserved >= ? AND quantity >= ?", variantID, locationID, qty, qty).
		Updates(map[string]any{
			"reserved": gorm.Expr("reserved - ?", qty),
			"quantity": gorm.Expr("quantity - ?", qty),
		})

	return repo.checkCounterUpdate(ctx, result, variantID, locationID, "failed to commit stock")
}

// Restore puts previously committed units back on hand.
func (repo *stockRepository) Restore(ctx context.Context, variantID, locationID uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("variant_id = ? AND location_id = ?", variantID, locationID).
		Update("quantity", gorm.Expr("quantity + ?", qty))

	return repo.checkCounterUpdate(ctx, result, variantID, locationID, "failed to restore stock")
}

// checkCounterUpdate tells a missing row apart from a guard that refused the update.
func (repo *stockRepository) checkCounterUpdate(ctx context.Context, result *gorm.DB, variantID, locationID uuid.UUID, details string) error {
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrStockCountersViolated
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("variant_id = ? AND location_id = ?", variantID, locationID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check stock level")
	}

	if count == 0 {
		return repository.ErrStockRecordNotFound
	}

	return repository.ErrStockCountersViolated
}

// --- Mapper Functions ---

func toStockDomain(data *model.StockLevelModel) *entity.StockRecord {
	if data == nil {
		return nil
	}

	return &entity.StockRecord{
		ID:         data.ID,
		VariantID:  data.VariantID,
		LocationID: data.LocationID,
		Quantity:   data.Quantity,
		Reserved:   data.Reserved,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromStockDomain(data *entity.StockRecord) *model.StockLevelModel {
	if data == nil {
		return nil
	}

	return &model.StockLevelModel{
		ID:         data.ID,
		VariantID:  data.VariantID,
		LocationID: data.LocationID,
		Quantity:   data.Quantity,
		Reserved:   data.Reserved,
		UpdatedAt:  data.UpdatedAt,
	}
}
