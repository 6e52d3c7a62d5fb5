package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type cartRepository struct {
	store *Store
	inTx  bool
}

func (r *cartRepository) FindCartByIdentity(_ context.Context, identity entity.Identity) (*entity.Cart, error) {
	var found *entity.Cart
	err := r.store.run(r.inTx, func(st *state) error {
		for _, cart := range st.carts {
			if ownedBy(cart, identity) {
				c := copyCart(cart)
				found = &c

				return nil
			}
		}

		return repository.ErrCartNotFound
	})

	return found, err
}

func ownedBy(cart entity.Cart, identity entity.Identity) bool {
	if identity.IsCustomer() {
		return cart.CustomerID != nil && *cart.CustomerID == *identity.CustomerID
	}

	return cart.SessionToken != nil && *cart.SessionToken == identity.SessionToken
}

func (r *cartRepository) FindCartByID(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
	var found *entity.Cart
	err := r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[id]
		if !ok {
			return repository.ErrCartNotFound
		}
		c := copyCart(cart)
		found = &c

		return nil
	})

	return found, err
}

func (r *cartRepository) CreateCart(_ context.Context, cart *entity.Cart) error {
	return r.store.run(r.inTx, func(st *state) error {
		for _, existing := range st.carts {
			if sameOwner(existing, *cart) {
				return repository.ErrDuplicateCart
			}
		}
		if cart.ID == uuid.Nil {
			cart.ID = uuid.New()
		}
		now := time.Now()
		cart.CreatedAt, cart.UpdatedAt = now, now
		st.carts[cart.ID] = copyCart(*cart)

		return nil
	})
}

func sameOwner(a, b entity.Cart) bool {
	if a.CustomerID != nil && b.CustomerID != nil {
		return *a.CustomerID == *b.CustomerID
	}
	if a.SessionToken != nil && b.SessionToken != nil {
		return *a.SessionToken == *b.SessionToken
	}

	return false
}

func (r *cartRepository) AddLine(_ context.Context, cartID, variantID uuid.UUID, qty int) (*entity.CartLine, error) {
	var line entity.CartLine
	err := r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[cartID]
		if !ok {
			return repository.ErrCartNotFound
		}
		now := time.Now()
		if existing, ok := cart.Line(variantID); ok {
			existing.Quantity += qty
			existing.UpdatedAt = now
			line = *existing
		} else {
			line = entity.CartLine{
				ID:        uuid.New(),
				CartID:    cartID,
				VariantID: variantID,
				Quantity:  qty,
				CreatedAt: now,
				UpdatedAt: now,
			}
			cart.Lines = append(cart.Lines, line)
		}
		cart.UpdatedAt = now
		st.carts[cartID] = cart

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *cartRepository) SetLineQuantity(_ context.Context, cartID, variantID uuid.UUID, qty int) error {
	return r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[cartID]
		if !ok {
			return repository.ErrCartNotFound
		}
		line, ok := cart.Line(variantID)
		if !ok {
			return repository.ErrCartLineNotFound
		}
		now := time.Now()
		line.Quantity = qty
		line.UpdatedAt = now
		cart.UpdatedAt = now
		st.carts[cartID] = cart

		return nil
	})
}

func (r *cartRepository) RemoveLine(_ context.Context, cartID, variantID uuid.UUID) error {
	return r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[cartID]
		if !ok {
			return repository.ErrCartNotFound
		}
		kept := cart.Lines[:0]
		removed := false
		for _, line := range cart.Lines {
			if line.VariantID == variantID {
				removed = true

				continue
			}
			kept = append(kept, line)
		}
		if !removed {
			return repository.ErrCartLineNotFound
		}
		cart.Lines = kept
		cart.UpdatedAt = time.Now()
		st.carts[cartID] = cart

		return nil
	})
}

func (r *cartRepository) ExtendCart(_ context.Context, cartID uuid.UUID, expiresAt time.Time) error {
	return r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[cartID]
		if !ok {
			return repository.ErrCartNotFound
		}
		cart.ExpiresAt = expiresAt
		cart.UpdatedAt = time.Now()
		st.carts[cartID] = cart

		return nil
	})
}

func (r *cartRepository) ClearLines(_ context.Context, cartID uuid.UUID) error {
	return r.store.run(r.inTx, func(st *state) error {
		cart, ok := st.carts[cartID]
		if !ok {
			return repository.ErrCartNotFound
		}
		cart.Lines = nil
		cart.UpdatedAt = time.Now()
		st.carts[cartID] = cart

		return nil
	})
}

func (r *cartRepository) DeleteExpiredCarts(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := r.store.run(r.inTx, func(st *state) error {
		for id, cart := range st.carts {
			if cart.ExpiresAt.Before(before) {
				delete(st.carts, id)
				deleted++
			}
		}

		return nil
	})

	return deleted, err
}
