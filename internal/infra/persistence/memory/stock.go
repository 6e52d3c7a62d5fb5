package memory

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type stockRepository struct {
	store *Store
	inTx  bool
}

func (r *stockRepository) FindByVariants(_ context.Context, variantIDs []uuid.UUID) ([]*entity.StockRecord, error) {
	wanted := make(map[uuid.UUID]struct{}, len(variantIDs))
	for _, id := range variantIDs {
		wanted[id] = struct{}{}
	}

	records := make([]*entity.StockRecord, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, rec := range st.stock {
			if _, ok := wanted[rec.VariantID]; ok {
				records = append(records, &rec)
			}
		}

		return nil
	})

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Available() != records[j].Available() {
			return records[i].Available() > records[j].Available()
		}

		return records[i].LocationID.String() < records[j].LocationID.String()
	})

	return records, err
}

func (r *stockRepository) CreateStockRecord(_ context.Context, record *entity.StockRecord) error {
	if record.Reserved < 0 || record.Quantity < 0 || record.Reserved > record.Quantity {
		return repository.ErrStockCountersViolated
	}

	return r.store.run(r.inTx, func(st *state) error {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		record.UpdatedAt = time.Now()
		st.stock[stockKey{record.VariantID, record.LocationID}] = *record

		return nil
	})
}

func (r *stockRepository) TryReserve(_ context.Context, variantID, locationID uuid.UUID, qty int) (bool, error) {
	reserved := false
	err := r.store.run(r.inTx, func(st *state) error {
		key := stockKey{variantID, locationID}
		rec, ok := st.stock[key]
		if !ok || rec.Available() < qty {
			return nil
		}
		rec.Reserved += qty
		rec.UpdatedAt = time.Now()
		st.stock[key] = rec
		reserved = true

		return nil
	})

	return reserved, err
}

func (r *stockRepository) Release(_ context.Context, variantID, locationID uuid.UUID, qty int) error {
	return r.mutate(variantID, locationID, func(rec *entity.StockRecord) bool {
		if rec.Reserved < qty {
			return false
		}
		rec.Reserved -= qty

		return true
	})
}

func (r *stockRepository) Commit(_ context.Context, variantID, locationID uuid.UUID, qty int) error {
	return r.mutate(variantID, locationID, func(rec *entity.StockRecord) bool {
		if rec.Reserved < qty || rec.Quantity < qty {
			return false
		}
		rec.Reserved -= qty
		rec.Quantity -= qty

		return true
	})
}

func (r *stockRepository) Restore(_ context.Context, variantID, locationID uuid.UUID, qty int) error {
	return r.mutate(variantID, locationID, func(rec *entity.StockRecord) bool {
		rec.Quantity += qty

		return true
	})
}

func (r *stockRepository) mutate(variantID, locationID uuid.UUID, apply func(rec *entity.StockRecord) bool) error {
	return r.store.run(r.inTx, func(st *state) error {
		key := stockKey{variantID, locationID}
		rec, ok := st.stock[key]
		if !ok {
			return repository.ErrStockRecordNotFound
		}
		if !apply(&rec) {
			return repository.ErrStockCountersViolated
		}
		rec.UpdatedAt = time.Now()
		st.stock[key] = rec

		return nil
	})
}
