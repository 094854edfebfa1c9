package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type UserEventProcessor interface {
	Execute(ctx context.Context, ev user.Event) error
}

// KafkaConsumerClient reads user.events and commits every fetched message once,
// whether processing succeeded or the event was skipped. Nothing is retried.
type KafkaConsumerClient struct {
	reader    messageReader
	processor UserEventProcessor
	logger    logger.Logger
}

func NewKafkaConsumerClient(cfg config.Config, groupID string, processor UserEventProcessor, log logger.Logger) (*KafkaConsumerClient, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicUserEvents,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &KafkaConsumerClient{reader: reader, processor: processor, logger: log}, nil
}

// Run blocks until ctx is cancelled.
func (c *KafkaConsumerClient) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to fetch message from Kafka", err)
			continue
		}

		c.handleMessage(ctx, msg)
	}
}

func (c *KafkaConsumerClient) handleMessage(ctx context.Context, msg kafka.Message) {
	fields := []zap.Field{zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset)}

	ev, err := DecodeUserEvent(msg)
	if err != nil {
		c.logger.Error("Undecodable user event, committing and skipping", err, fields...)
	} else if err := c.processor.Execute(ctx, ev); err != nil {
		c.logger.Error("User event processing failed, committing and skipping (no retry)", err,
			append(fields, zap.Int64("user_id", ev.UserID))...)
	}

	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, fields...)
	}
}

func (c *KafkaConsumerClient) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("Failed to close Kafka consumer", err)
		return
	}
	c.logger.Info("Closed Kafka consumer")
}
