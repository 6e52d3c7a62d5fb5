package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.OrderEvent
	failOn map[uuid.UUID]bool
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event *entity.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failOn[event.EventID] {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*entity.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*entity.OrderEvent(nil), p.events...)
}

type relayFixture struct {
	relay     *Relay
	repos     repository.RepositoryFactory
	publisher *recordingPublisher
}

func newRelayFixture(t *testing.T, batchSize int) relayFixture {
	t.Helper()

	store := memory.NewStore()
	publisher := &recordingPublisher{failOn: map[uuid.UUID]bool{}}

	cfg := &config.Config{}
	cfg.Outbox.PollInterval = 10 * time.Millisecond
	cfg.Outbox.BatchSize = batchSize

	relay := NewRelay(RelayParams{
		TxManager: memory.NewTransactionManager(store),
		Publisher: publisher,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return relayFixture{relay: relay, repos: memory.NewRepositoryFactory(store), publisher: publisher}
}

func (f relayFixture) enqueue(t *testing.T, eventType entity.OrderEventType, createdAt time.Time) *entity.OrderEvent {
	t.Helper()

	event := &entity.OrderEvent{
		EventID:     uuid.New(),
		Type:        eventType,
		OrderID:     uuid.New(),
		OrderNumber: "IG-TEST",
		OccurredAt:  createdAt,
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, f.repos.OutboxRepo().EnqueueEvent(context.Background(), &entity.OutboxEvent{
		ID:          event.EventID,
		EventType:   string(eventType),
		AggregateID: event.OrderID,
		Payload:     payload,
		CreatedAt:   createdAt,
	}))

	return event
}

func TestRelay_RunOnce_PublishesInOrder(t *testing.T) {
	f := newRelayFixture(t, 10)
	base := time.Now().Add(-time.Minute)
	first := f.enqueue(t, entity.OrderEventPaid, base)
	second := f.enqueue(t, entity.OrderEventDispatched, base.Add(time.Second))

	published, err := f.relay.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	events := f.publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, first.EventID, events[0].EventID)
	assert.Equal(t, second.EventID, events[1].EventID)

	remaining, err := f.repos.OutboxRepo().FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	published, err = f.relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, published)
}

func TestRelay_RunOnce_FailedPublishIsRetried(t *testing.T) {
	f := newRelayFixture(t, 10)
	base := time.Now().Add(-time.Minute)
	failing := f.enqueue(t, entity.OrderEventPaid, base)
	ok := f.enqueue(t, entity.OrderEventCancelled, base.Add(time.Second))
	f.publisher.failOn[failing.EventID] = true

	published, err := f.relay.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, published)
	remaining, err := f.repos.OutboxRepo().FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, failing.EventID, remaining[0].ID)
	assert.Equal(t, 1, remaining[0].Attempts)
	assert.Contains(t, remaining[0].LastError, "broker unavailable")

	f.publisher.failOn[failing.EventID] = false
	published, err = f.relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, published)

	ids := make([]uuid.UUID, 0, 2)
	for _, e := range f.publisher.published() {
		ids = append(ids, e.EventID)
	}
	assert.Equal(t, []uuid.UUID{ok.EventID, failing.EventID}, ids)
}

func TestRelay_RunOnce_MalformedPayload(t *testing.T) {
	f := newRelayFixture(t, 10)
	id := uuid.New()
	require.NoError(t, f.repos.OutboxRepo().EnqueueEvent(context.Background(), &entity.OutboxEvent{
		ID:        id,
		EventType: string(entity.OrderEventPaid),
		Payload:   []byte("{"),
	}))

	published, err := f.relay.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, published)
	remaining, err := f.repos.OutboxRepo().FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Contains(t, remaining[0].LastError, "malformed outbox payload")
}

func TestRelay_RunOnce_BatchSize(t *testing.T) {
	f := newRelayFixture(t, 2)
	base := time.Now().Add(-time.Minute)
	for i := range 5 {
		f.enqueue(t, entity.OrderEventPaid, base.Add(time.Duration(i)*time.Second))
	}

	published, err := f.relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, published)
}

func TestRelay_RunOnce_FetchError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	outboxRepo := mockRepo.NewMockOutboxRepository(t)

	factory.EXPECT().OutboxRepo().Return(outboxRepo)
	outboxRepo.EXPECT().FetchUnpublished(mock.Anything, 100).Return(nil, errors.New("connection reset"))
	txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	cfg := &config.Config{}
	cfg.Outbox.BatchSize = 100
	cfg.Outbox.PollInterval = time.Second
	relay := NewRelay(RelayParams{
		TxManager: txManager,
		Publisher: &recordingPublisher{},
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	published, err := relay.RunOnce(context.Background())
	require.Error(t, err)
	assert.Zero(t, published)
}

func TestStart_RunsUntilStopped(t *testing.T) {
	f := newRelayFixture(t, 10)
	event := f.enqueue(t, entity.OrderEventPaid, time.Now())

	cfg := &config.Config{}
	cfg.Outbox.Enabled = true

	lc := fxtest.NewLifecycle(t)
	Start(StartParams{Lifecycle: lc, Relay: f.relay, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	lc.RequireStart()

	assert.Eventually(t, func() bool {
		return len(f.publisher.published()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, event.EventID, f.publisher.published()[0].EventID)

	lc.RequireStop()
}

func TestStart_Disabled(t *testing.T) {
	f := newRelayFixture(t, 10)
	f.enqueue(t, entity.OrderEventPaid, time.Now())

	lc := fxtest.NewLifecycle(t)
	Start(StartParams{Lifecycle: lc, Relay: f.relay, Config: &config.Config{}, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	lc.RequireStart()
	lc.RequireStop()

	assert.Empty(t, f.publisher.published())
}
