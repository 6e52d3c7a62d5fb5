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

// variantRepository implements the repository.VariantRepository interface.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{
		db: db,
	}
}

// FindVariantByID returns a variant joined with its product name.
func (repo *variantRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variantM model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("product_variants.id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// FindVariantsByIDs returns the variants that exist.
func (repo *variantRepository) FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Variant, error) {
	if len(ids) == 0 {
		return []*entity.Variant{}, nil
	}

	var variantModels []*model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("product_variants.id IN ?", ids).
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants")
	}

	variants := make([]*entity.Variant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// CreateVariant persists a variant; its product must already exist.
func (repo *variantRepository) CreateVariant(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(variantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("sku already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	variant.ID = variantM.ID

	return nil
}

// --- Mapper Functions ---

func toVariantDomain(data *model.ProductVariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:             data.ID,
		ProductID:      data.ProductID,
		ProductName:    data.Product.Name,
		Name:           data.Name,
		SKU:            data.SKU,
		Price:          data.Price,
		CompareAtPrice: data.CompareAtPrice,
		ImageURL:       data.ImageURL,
		IsActive:       data.IsActive && (data.Product.ID == uuid.Nil || data.Product.IsActive),
	}
}

func fromVariantDomain(data *entity.Variant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	return &model.ProductVariantModel{
		ID:             data.ID,
		ProductID:      data.ProductID,
		Name:           data.Name,
		SKU:            data.SKU,
		Price:          data.Price,
		CompareAtPrice: data.CompareAtPrice,
		ImageURL:       data.ImageURL,
		IsActive:       data.IsActive,
	}
}
