// Package memory is an in-process implementation of the persistence layer.
// It backs the "memory" storage driver and the order engine's scenario tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every table in maps guarded by one mutex.
// A transaction holds the mutex for its whole duration and restores a snapshot on error,
// so the non-transactional repositories must not be used inside TransactionManager.Execute.
type Store struct {
	mu    sync.Mutex
	state *state
}

type stockKey struct {
	variantID  uuid.UUID
	locationID uuid.UUID
}

type state struct {
	variants map[uuid.UUID]entity.Variant
	stock    map[stockKey]entity.StockRecord
	carts    map[uuid.UUID]entity.Cart
	rules    map[string]entity.DeliveryRule
	orders   map[uuid.UUID]entity.Order
	history  map[uuid.UUID][]entity.OrderStatusHistory
	payments map[uuid.UUID]entity.Payment
	audit    []entity.AuditLog
	outbox   []entity.OutboxEvent
	devices  map[uuid.UUID]entity.CustomerDevice
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		state: &state{
			variants: make(map[uuid.UUID]entity.Variant),
			stock:    make(map[stockKey]entity.StockRecord),
			carts:    make(map[uuid.UUID]entity.Cart),
			rules:    make(map[string]entity.DeliveryRule),
			orders:   make(map[uuid.UUID]entity.Order),
			history:  make(map[uuid.UUID][]entity.OrderStatusHistory),
			payments: make(map[uuid.UUID]entity.Payment),
			devices:  make(map[uuid.UUID]entity.CustomerDevice),
		},
	}
}

// clone deep-copies the state. Entity time pointers are shared because nothing mutates through them.
func (s *state) clone() *state {
	c := &state{
		variants: make(map[uuid.UUID]entity.Variant, len(s.variants)),
		stock:    make(map[stockKey]entity.StockRecord, len(s.stock)),
		carts:    make(map[uuid.UUID]entity.Cart, len(s.carts)),
		rules:    make(map[string]entity.DeliveryRule, len(s.rules)),
		orders:   make(map[uuid.UUID]entity.Order, len(s.orders)),
		history:  make(map[uuid.UUID][]entity.OrderStatusHistory, len(s.history)),
		payments: make(map[uuid.UUID]entity.Payment, len(s.payments)),
		audit:    append([]entity.AuditLog(nil), s.audit...),
		outbox:   make([]entity.OutboxEvent, 0, len(s.outbox)),
		devices:  make(map[uuid.UUID]entity.CustomerDevice, len(s.devices)),
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = copyCart(v)
	}
	for k, v := range s.rules {
		c.rules[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = copyOrder(v)
	}
	for k, v := range s.history {
		c.history[k] = append([]entity.OrderStatusHistory(nil), v...)
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for _, e := range s.outbox {
		e.Payload = append([]byte(nil), e.Payload...)
		c.outbox = append(c.outbox, e)
	}
	for k, v := range s.devices {
		c.devices[k] = v
	}

	return c
}

func copyCart(c entity.Cart) entity.Cart {
	c.Lines = append([]entity.CartLine(nil), c.Lines...)

	return c
}

func copyOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	for i := range o.Items {
		o.Items[i].Allocations = append([]entity.StockAllocation(nil), o.Items[i].Allocations...)
	}
	o.History = nil

	return o
}

func regionKey(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

// run executes fn against the state, taking the lock unless the caller is inside a transaction.
func (s *Store) run(inTx bool, fn func(st *state) error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(s.state)
}

// transactionManager implements repository.TransactionManager on the store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a transaction manager bound to the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store lock and restores the snapshot if fn fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()

	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: s, inTx: true}); err != nil {
		s.state = snapshot

		return err
	}

	return nil
}

// repositoryFactory hands out repositories that share the caller's lock state.
type repositoryFactory struct {
	store *Store
	inTx  bool
}

// NewRepositoryFactory returns a factory of repositories that lock per operation.
func NewRepositoryFactory(store *Store) repository.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) StockRepo() repository.StockRepository {
	return &stockRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) VariantRepo() repository.VariantRepository {
	return &variantRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) DeliveryRuleRepo() repository.DeliveryRuleRepository {
	return &deliveryRuleRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) PaymentRepo() repository.PaymentRepository {
	return &paymentRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) AuditRepo() repository.AuditRepository {
	return &auditRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) OutboxRepo() repository.OutboxRepository {
	return &outboxRepository{store: f.store, inTx: f.inTx}
}

func (f *repositoryFactory) DeviceRepo() repository.DeviceRepository {
	return &deviceRepository{store: f.store, inTx: f.inTx}
}
