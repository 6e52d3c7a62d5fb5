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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindCartByIdentity returns the identity's cart with its lines.
func (repo *cartRepository) FindCartByIdentity(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	query := repo.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
	if identity.IsCustomer() {
		query = query.Where("customer_id = ?", *identity.CustomerID)
	} else {
		query = query.Where("session_token = ?", identity.SessionToken)
	}

	var cartM model.CartModel
	if err := query.First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by identity")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByID returns a cart with its lines.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by ID")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart persists a new empty cart.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCart
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// AddLine upserts on (cart_id, variant_id) so concurrent adds of the same variant sum up.
func (repo *cartRepository) AddLine(ctx context.Context, cartID, variantID uuid.UUID, qty int) (*entity.CartLine, error) {
	now := time.Now()
	itemM := &model.CartItemModel{
		ID:        uuid.New(),
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": now,
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrCartNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart line")
	}

	var stored model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload cart line")
	}

	if err := repo.touch(ctx, cartID, now); err != nil {
		return nil, err
	}

	line := toCartLineDomain(&stored)

	return &line, nil
}

// SetLineQuantity overwrites the quantity of an existing line.
func (repo *cartRepository) SetLineQuantity(ctx context.Context, cartID, variantID uuid.UUID, qty int) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Updates(map[string]any{"quantity": qty, "updated_at": now})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return repo.touch(ctx, cartID, now)
}

// RemoveLine deletes the line for a variant.
func (repo *cartRepository) RemoveLine(ctx context.Context, cartID, variantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return repo.touch(ctx, cartID, time.Now())
}

// ExtendCart moves the expiry of a cart.
func (repo *cartRepository) ExtendCart(ctx context.Context, cartID uuid.UUID, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Updates(map[string]any{"expires_at": expiresAt, "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to extend cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// ClearLines deletes every line of a cart, keeping the cart row.
func (repo *cartRepository) ClearLines(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return repo.touch(ctx, cartID, time.Now())
}

// DeleteExpiredCarts removes carts past their expiry; lines go with them through ON DELETE CASCADE.
func (repo *cartRepository) DeleteExpiredCarts(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.CartModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired carts")
	}

	return result.RowsAffected, nil
}

func (repo *cartRepository) touch(ctx context.Context, cartID uuid.UUID, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", now).Error; err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	lines := make([]entity.CartLine, 0, len(data.Items))
	for i := range data.Items {
		lines = append(lines, toCartLineDomain(&data.Items[i]))
	}

	return &entity.Cart{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		SessionToken: data.SessionToken,
		ExpiresAt:    data.ExpiresAt,
		Lines:        lines,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCartLineDomain(data *model.CartItemModel) entity.CartLine {
	return entity.CartLine{
		ID:        data.ID,
		CartID:    data.CartID,
		VariantID: data.VariantID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		SessionToken: data.SessionToken,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
