package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous publisher keyed by order ID, so one order's events share a partition.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required for kafka provider")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required for kafka provider")
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("[Kafka] writer error", slog.String("detail", fmt.Sprintf(msg, args...)))
		}),
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return &kafkaPublisher{writer: writer, logger: logger}, nil
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attrs := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attrs))
	for _, key := range []string{"event_id", "event_type", "order_id", "order_number"} {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(attrs[key])})
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID.String()),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
