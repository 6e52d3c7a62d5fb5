package memory

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type variantRepository struct {
	store *Store
	inTx  bool
}

func (r *variantRepository) FindVariantByID(_ context.Context, id uuid.UUID) (*entity.Variant, error) {
	var found *entity.Variant
	err := r.store.run(r.inTx, func(st *state) error {
		v, ok := st.variants[id]
		if !ok {
			return repository.ErrVariantNotFound
		}
		found = &v

		return nil
	})

	return found, err
}

func (r *variantRepository) FindVariantsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Variant, error) {
	variants := make([]*entity.Variant, 0, len(ids))
	err := r.store.run(r.inTx, func(st *state) error {
		for _, id := range ids {
			if v, ok := st.variants[id]; ok {
				variants = append(variants, &v)
			}
		}

		return nil
	})

	return variants, err
}

func (r *variantRepository) CreateVariant(_ context.Context, variant *entity.Variant) error {
	return r.store.run(r.inTx, func(st *state) error {
		for _, existing := range st.variants {
			if existing.SKU == variant.SKU {
				return domainerrors.ErrConflict.WrapMessage("sku already exists")
			}
		}
		if variant.ID == uuid.Nil {
			variant.ID = uuid.New()
		}
		st.variants[variant.ID] = *variant

		return nil
	})
}

type deliveryRuleRepository struct {
	store *Store
	inTx  bool
}

func (r *deliveryRuleRepository) FindRuleByRegion(_ context.Context, region string) (*entity.DeliveryRule, error) {
	var found *entity.DeliveryRule
	err := r.store.run(r.inTx, func(st *state) error {
		rule, ok := st.rules[regionKey(region)]
		if !ok || !rule.IsActive {
			return repository.ErrDeliveryRuleNotFound
		}
		found = &rule

		return nil
	})

	return found, err
}

func (r *deliveryRuleRepository) ListActiveRules(_ context.Context) ([]*entity.DeliveryRule, error) {
	rules := make([]*entity.DeliveryRule, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, rule := range st.rules {
			if rule.IsActive {
				rules = append(rules, &rule)
			}
		}

		return nil
	})

	sort.Slice(rules, func(i, j int) bool { return rules[i].Region < rules[j].Region })

	return rules, err
}

func (r *deliveryRuleRepository) UpsertRule(_ context.Context, rule *entity.DeliveryRule) error {
	return r.store.run(r.inTx, func(st *state) error {
		key := regionKey(rule.Region)
		if existing, ok := st.rules[key]; ok {
			rule.ID = existing.ID
		} else if rule.ID == uuid.Nil {
			rule.ID = uuid.New()
		}
		rule.UpdatedAt = time.Now()
		st.rules[key] = *rule

		return nil
	})
}
