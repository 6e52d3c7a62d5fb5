package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryRuleRepository implements the repository.DeliveryRuleRepository interface.
type deliveryRuleRepository struct {
	db *gorm.DB
}

// NewDeliveryRuleRepository is the constructor for deliveryRuleRepository.
func NewDeliveryRuleRepository(db *gorm.DB) repository.DeliveryRuleRepository {
	return &deliveryRuleRepository{
		db: db,
	}
}

// FindRuleByRegion returns the active rule for a region, matched case-insensitively.
func (repo *deliveryRuleRepository) FindRuleByRegion(ctx context.Context, region string) (*entity.DeliveryRule, error) {
	var ruleM model.DeliveryRuleModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(region) = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(region)), true).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery rule")
	}

	return toDeliveryRuleDomain(&ruleM), nil
}

// ListActiveRules returns every active rule ordered by region.
func (repo *deliveryRuleRepository) ListActiveRules(ctx context.Context) ([]*entity.DeliveryRule, error) {
	var ruleModels []*model.DeliveryRuleModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("region ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery rules")
	}

	rules := make([]*entity.DeliveryRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toDeliveryRuleDomain(ruleM))
	}

	return rules, nil
}

// UpsertRule creates or replaces the rule for its region.
func (repo *deliveryRuleRepository) UpsertRule(ctx context.Context, rule *entity.DeliveryRule) error {
	ruleM := fromDeliveryRuleDomain(rule)
	ruleM.UpdatedAt = time.Now()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "region"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_fee", "free_above", "min_days", "max_days", "is_active", "updated_at"}),
		}).
		Create(ruleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert delivery rule")
	}

	rule.ID = ruleM.ID
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toDeliveryRuleDomain(data *model.DeliveryRuleModel) *entity.DeliveryRule {
	if data == nil {
		return nil
	}

	return &entity.DeliveryRule{
		ID:        data.ID,
		Region:    data.Region,
		BaseFee:   data.BaseFee,
		FreeAbove: data.FreeAbove,
		MinDays:   data.MinDays,
		MaxDays:   data.MaxDays,
		IsActive:  data.IsActive,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeliveryRuleDomain(data *entity.DeliveryRule) *model.DeliveryRuleModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryRuleModel{
		ID:        data.ID,
		Region:    data.Region,
		BaseFee:   data.BaseFee,
		FreeAbove: data.FreeAbove,
		MinDays:   data.MinDays,
		MaxDays:   data.MaxDays,
		IsActive:  data.IsActive,
		UpdatedAt: data.UpdatedAt,
	}
}
