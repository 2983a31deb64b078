package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

// KafkaPublisher публикует события заказов в топик Kafka. Ключ сообщения
// номер заказа, поэтому события одного заказа попадают в одну партицию по порядку.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher создает KafkaPublisher
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// message собирает сообщение Kafka для события
func message(ev domain.OrderEvent) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event %s: %w", ev.ID, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: value,
		Time:  ev.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.ID)},
			{Key: "type", Value: []byte("order_status_changed")},
		},
	}, nil
}

// PublishOrderEvent отправляет событие и ждет подтверждения брокеров
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error {
	msg, err := message(ev)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event for order %d: %w", ev.OrderID, err)
	}

	p.logger.Debug("order event published",
		zap.String("event_id", ev.ID),
		zap.Int64("order_id", ev.OrderID),
		zap.String("to", string(ev.To)),
	)

	return nil
}

// Close сбрасывает буфер и закрывает соединения
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop отбрасывает события, когда брокеры не настроены
type Nop struct{}

// PublishOrderEvent ничего не делает
func (Nop) PublishOrderEvent(context.Context, domain.OrderEvent) error { return nil }

// Close ничего не делает
func (Nop) Close() error { return nil }
