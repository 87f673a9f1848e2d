package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

// NewKafkaPublisher публикует события заказов в топик. Ключ сообщения id заказа,
// поэтому события одного заказа попадают в одну партицию.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	logger = logger.With(slog.String("notifier", "kafka"))
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("failed to publish order events",
					slog.Int("count", len(messages)),
					slog.Any("error", err),
				)
			}
		},
	})
}

func newKafkaPublisher(logger *slog.Logger, w messageWriter) *kafkaPublisher {
	return &kafkaPublisher{logger: logger, writer: w}
}

func (p *kafkaPublisher) Notify(ctx context.Context, event entities.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal order event", slog.Any("error", err))
		return
	}

	msg := kafka.Message{Key: []byte(event.OrderID), Value: data}
	// Сообщение уходит асинхронно, уже после завершения запроса
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
