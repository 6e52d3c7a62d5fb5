package memory

import (
	"context"
	"slices"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type auditRepository struct {
	store *Store
	inTx  bool
}

func (r *auditRepository) CreateAuditLog(_ context.Context, log *entity.AuditLog) error {
	return r.store.run(r.inTx, func(st *state) error {
		if log.ID == uuid.Nil {
			log.ID = uuid.New()
		}
		if log.CreatedAt.IsZero() {
			log.CreatedAt = time.Now()
		}
		st.audit = append(st.audit, *log)

		return nil
	})
}

// AuditLogs returns a copy of every audit entry, oldest first.
func (s *Store) AuditLogs() []entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.state.audit)
}

type outboxRepository struct {
	store *Store
	inTx  bool
}

func (r *outboxRepository) EnqueueEvent(_ context.Context, event *entity.OutboxEvent) error {
	return r.store.run(r.inTx, func(st *state) error {
		if event.CreatedAt.IsZero() {
			event.CreatedAt = time.Now()
		}
		e := *event
		e.Payload = slices.Clone(event.Payload)
		st.outbox = append(st.outbox, e)

		return nil
	})
}

func (r *outboxRepository) FetchUnpublished(_ context.Context, limit int) ([]*entity.OutboxEvent, error) {
	events := make([]*entity.OutboxEvent, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, e := range st.outbox {
			if e.PublishedAt != nil {
				continue
			}
			e.Payload = slices.Clone(e.Payload)
			events = append(events, &e)
			if limit > 0 && len(events) == limit {
				break
			}
		}

		return nil
	})

	return events, err
}

func (r *outboxRepository) MarkPublished(_ context.Context, id uuid.UUID, publishedAt time.Time) error {
	return r.update(id, func(e *entity.OutboxEvent) {
		at := publishedAt
		e.PublishedAt = &at
	})
}

func (r *outboxRepository) MarkAttemptFailed(_ context.Context, id uuid.UUID, lastError string) error {
	return r.update(id, func(e *entity.OutboxEvent) {
		e.Attempts++
		e.LastError = lastError
	})
}

func (r *outboxRepository) update(id uuid.UUID, apply func(e *entity.OutboxEvent)) error {
	return r.store.run(r.inTx, func(st *state) error {
		for i := range st.outbox {
			if st.outbox[i].ID == id {
				apply(&st.outbox[i])

				return nil
			}
		}

		return nil
	})
}

type deviceRepository struct {
	store *Store
	inTx  bool
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.CustomerDevice) error {
	return r.store.run(r.inTx, func(st *state) error {
		for _, existing := range st.devices {
			if existing.CustomerID == device.CustomerID && existing.DeviceID == device.DeviceID {
				return repository.ErrDuplicateDevice
			}
		}
		if device.ID == uuid.Nil {
			device.ID = uuid.New()
		}
		now := time.Now()
		device.CreatedAt, device.UpdatedAt = now, now
		st.devices[device.ID] = *device

		return nil
	})
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.CustomerDevice, error) {
	var found *entity.CustomerDevice
	err := r.store.run(r.inTx, func(st *state) error {
		d, ok := st.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		found = &d

		return nil
	})

	return found, err
}

func (r *deviceRepository) FindDevicesByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	return r.filter(func(d entity.CustomerDevice) bool { return d.CustomerID == customerID })
}

func (r *deviceRepository) FindActiveDevicesByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	return r.filter(func(d entity.CustomerDevice) bool { return d.CustomerID == customerID && d.IsActive })
}

func (r *deviceRepository) filter(keep func(d entity.CustomerDevice) bool) ([]*entity.CustomerDevice, error) {
	devices := make([]*entity.CustomerDevice, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, d := range st.devices {
			if keep(d) {
				devices = append(devices, &d)
			}
		}

		return nil
	})

	slices.SortFunc(devices, func(a, b *entity.CustomerDevice) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return devices, err
}

func (r *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	return r.store.run(r.inTx, func(st *state) error {
		d, ok := st.devices[deviceID]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		d.FCMToken = fcmToken
		d.IsActive = true
		d.UpdatedAt = time.Now()
		st.devices[deviceID] = d

		return nil
	})
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	return r.store.run(r.inTx, func(st *state) error {
		if _, ok := st.devices[id]; !ok {
			return repository.ErrDeviceNotFound
		}
		delete(st.devices, id)

		return nil
	})
}

func (r *deviceRepository) DeactivateDevicesByTokens(_ context.Context, tokens []string) error {
	return r.store.run(r.inTx, func(st *state) error {
		for id, d := range st.devices {
			if slices.Contains(tokens, d.FCMToken) {
				d.IsActive = false
				d.UpdatedAt = time.Now()
				st.devices[id] = d
			}
		}

		return nil
	})
}
