package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/logger"
)

const (
	TopicUserEvents = "user.events"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	UserEventsWriter messageWriter
	logger           logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	userWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicUserEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers), zap.String("topic", TopicUserEvents))

	return &KafkaProducerClient{
		UserEventsWriter: userWriter,
		logger:           log,
	}, nil
}

// PublishUserEvent keys messages by email so events for one user stay on one partition.
func (c *KafkaProducerClient) PublishUserEvent(ctx context.Context, ev user.Event) error {
	msg, err := NewUserEventMessage(ev)
	if err != nil {
		return err
	}
	if err := c.UserEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write user event: %w", err)
	}
	c.logger.Debug("User event published", zap.String("event_type", string(ev.Type)), zap.Int64("user_id", ev.UserID))
	return nil
}

func NewUserEventMessage(ev user.Event) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal user event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.Email),
		Value: value,
	}, nil
}

func DecodeUserEvent(msg kafka.Message) (user.Event, error) {
	var ev user.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return user.Event{}, fmt.Errorf("unmarshal user event: %w", err)
	}
	return ev, nil
}

func (c *KafkaProducerClient) Close() {
	if c.UserEventsWriter != nil {
		if err := c.UserEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}
