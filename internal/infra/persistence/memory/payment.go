package memory

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type paymentRepository struct {
	store *Store
	inTx  bool
}

func (r *paymentRepository) CreatePayment(_ context.Context, payment *entity.Payment) error {
	return r.store.run(r.inTx, func(st *state) error {
		if _, ok := st.orders[payment.OrderID]; !ok {
			return repository.ErrOrderNotFound
		}
		for _, existing := range st.payments {
			if existing.Reference == payment.Reference || existing.IdempotencyKey == payment.IdempotencyKey {
				return repository.ErrDuplicatePaymentReference
			}
		}
		if payment.ID == uuid.Nil {
			payment.ID = uuid.New()
		}
		now := time.Now()
		payment.CreatedAt, payment.UpdatedAt = now, now
		st.payments[payment.ID] = *payment

		return nil
	})
}

func (r *paymentRepository) FindPaymentByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	var found *entity.Payment
	err := r.store.run(r.inTx, func(st *state) error {
		p, ok := st.payments[id]
		if !ok {
			return repository.ErrPaymentNotFound
		}
		found = &p

		return nil
	})

	return found, err
}

func (r *paymentRepository) FindPaymentByReference(_ context.Context, reference string) (*entity.Payment, error) {
	var found *entity.Payment
	err := r.store.run(r.inTx, func(st *state) error {
		var byProvider *entity.Payment
		for _, p := range st.payments {
			if p.Reference == reference {
				found = &p

				return nil
			}
			if p.ProviderReference != nil && *p.ProviderReference == reference && byProvider == nil {
				byProvider = &p
			}
		}
		if byProvider == nil {
			return repository.ErrPaymentNotFound
		}
		found = byProvider

		return nil
	})

	return found, err
}

func (r *paymentRepository) FindPendingPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	payments, err := r.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.Status == entity.PaymentStatusPending {
			return p, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

func (r *paymentRepository) ListPaymentsByOrder(_ context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	payments := make([]*entity.Payment, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, p := range st.payments {
			if p.OrderID == orderID {
				payments = append(payments, &p)
			}
		}

		return nil
	})

	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })

	return payments, err
}

func (r *paymentRepository) MarkPaymentSucceeded(_ context.Context, id uuid.UUID, providerReference *string, paidAt time.Time) error {
	return r.settle(id, func(p *entity.Payment) {
		p.Status = entity.PaymentStatusSuccess
		at := paidAt
		p.PaidAt = &at
		if providerReference != nil && *providerReference != "" {
			ref := *providerReference
			p.ProviderReference = &ref
		}
	})
}

func (r *paymentRepository) MarkPaymentFailed(_ context.Context, id uuid.UUID, reason string) error {
	return r.settle(id, func(p *entity.Payment) {
		p.Status = entity.PaymentStatusFailed
		p.FailureReason = reason
	})
}

func (r *paymentRepository) UpdatePaymentReference(_ context.Context, id uuid.UUID, reference string) error {
	return r.store.run(r.inTx, func(st *state) error {
		for otherID, p := range st.payments {
			if otherID != id && p.Reference == reference {
				return repository.ErrDuplicatePaymentReference
			}
		}

		return settleLocked(st, id, func(p *entity.Payment) { p.Reference = reference })
	})
}

func (r *paymentRepository) settle(id uuid.UUID, apply func(p *entity.Payment)) error {
	return r.store.run(r.inTx, func(st *state) error {
		return settleLocked(st, id, apply)
	})
}

func settleLocked(st *state, id uuid.UUID, apply func(p *entity.Payment)) error {
	p, ok := st.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	if p.Status != entity.PaymentStatusPending {
		return repository.ErrPaymentAlreadySettled
	}
	apply(&p)
	p.UpdatedAt = time.Now()
	st.payments[id] = p

	return nil
}
