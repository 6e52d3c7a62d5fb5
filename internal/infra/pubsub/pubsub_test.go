package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *entity.OrderEvent {
	return &entity.OrderEvent{
		EventID:     uuid.New(),
		Type:        entity.OrderEventPaid,
		OrderID:     uuid.New(),
		OrderNumber: "IG-ABC-1234",
		Status:      entity.OrderStatusPaid,
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := testEvent()
	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.Equal(t, "order.paid", received.Message.Attributes["event_type"])
	assert.Equal(t, event.OrderID.String(), received.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.OrderNumber, decoded.OrderNumber)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}
	event := testEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.OrderID.String(), string(msg.Key))
	assert.True(t, event.OccurredAt.Equal(msg.Time))

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, event.EventID.String(), headers["event_id"])
	assert.Equal(t, "order.paid", headers["event_type"])
	assert.Equal(t, "IG-ABC-1234", headers["order_number"])

	var decoded entity.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Type, decoded.Type)

	writer.err = errors.New("leader not available")
	assert.ErrorContains(t, publisher.PublishOrderEvent(context.Background(), event), "leader not available")

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(nil, discardLogger())
	require.Error(t, err)

	_, err = NewKafkaPublisher(&config.KafkaConfig{Brokers: []string{"localhost:9092"}}, discardLogger())
	require.Error(t, err)

	publisher, err := NewKafkaPublisher(&config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "order-events"}, discardLogger())
	require.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		kafka    *config.KafkaConfig
		wantType any
		wantErr  bool
	}{
		{name: "not configured", wantType: &noopPublisher{}},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: "noop"}, wantType: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{
			name:     "kafka",
			pubsub:   &config.PubSubConfig{Provider: "kafka"},
			kafka:    &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "order-events"},
			wantType: &kafkaPublisher{},
		},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "sqs"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub, Kafka: tt.kafka},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
		})
	}
}
