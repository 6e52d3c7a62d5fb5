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
	"gorm.io/plugin/dbresolver"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment persists a new payment attempt.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePaymentReference
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindPaymentByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPaymentByReference prefers a match on our reference over the provider's.
func (repo *paymentRepository) FindPaymentByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("reference = ? OR provider_reference = ?", reference, reference).
		Order(gorm.Expr("CASE WHEN reference = ? THEN 0 ELSE 1 END", reference)).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by reference")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPendingPaymentByOrder returns the newest PENDING payment of an order.
func (repo *paymentRepository) FindPendingPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("order_id = ? AND status = ?", orderID, string(entity.PaymentStatusPending)).
		Order("created_at DESC").
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// ListPaymentsByOrder returns every attempt of an order, newest first.
func (repo *paymentRepository) ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// MarkPaymentSucceeded moves a PENDING payment to SUCCESS.
func (repo *paymentRepository) MarkPaymentSucceeded(ctx context.Context, id uuid.UUID, providerReference *string, paidAt time.Time) error {
	updates := map[string]any{
		"status":     string(entity.PaymentStatusSuccess),
		"paid_at":    paidAt,
		"updated_at": time.Now(),
	}
	if providerReference != nil && *providerReference != "" {
		updates["provider_reference"] = *providerReference
	}

	return repo.settle(ctx, id, updates)
}

// MarkPaymentFailed moves a PENDING payment to FAILED.
func (repo *paymentRepository) MarkPaymentFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return repo.settle(ctx, id, map[string]any{
		"status":         string(entity.PaymentStatusFailed),
		"failure_reason": reason,
		"updated_at":     time.Now(),
	})
}

// UpdatePaymentReference replaces the reference of a PENDING payment.
func (repo *paymentRepository) UpdatePaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	return repo.settle(ctx, id, map[string]any{
		"reference":  reference,
		"updated_at": time.Now(),
	})
}

// singleSuccessIndex allows one SUCCESS payment per order.
const singleSuccessIndex = "idx_payments_single_success"

// settle applies updates only while the payment is still PENDING.
func (repo *paymentRepository) settle(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND status = ?", id, string(entity.PaymentStatusPending)).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			if violatedConstraint(result.Error) == singleSuccessIndex {
				return repository.ErrPaymentAlreadySettled
			}

			return repository.ErrDuplicatePaymentReference
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PaymentModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check payment")
		}
		if count == 0 {
			return repository.ErrPaymentNotFound
		}

		return repository.ErrPaymentAlreadySettled
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                data.ID,
		OrderID:           data.OrderID,
		Provider:          data.Provider,
		Method:            entity.PaymentMethod(data.Method),
		Status:            entity.PaymentStatus(data.Status),
		Amount:            data.Amount,
		Currency:          data.Currency,
		Reference:         data.Reference,
		ProviderReference: data.ProviderReference,
		IdempotencyKey:    data.IdempotencyKey,
		FailureReason:     data.FailureReason,
		PaidAt:            data.PaidAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                data.ID,
		OrderID:           data.OrderID,
		Provider:          data.Provider,
		Method:            string(data.Method),
		Status:            string(data.Status),
		Amount:            data.Amount,
		Currency:          data.Currency,
		Reference:         data.Reference,
		ProviderReference: data.ProviderReference,
		IdempotencyKey:    data.IdempotencyKey,
		FailureReason:     data.FailureReason,
		PaidAt:            data.PaidAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
