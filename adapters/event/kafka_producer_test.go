package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/logger"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())

	assert.Error(t, err)
}

func TestPublishUserEvent(t *testing.T) {
	w := &recordingWriter{}
	client := &KafkaProducerClient{UserEventsWriter: w, logger: logger.NewNopLogger()}
	ev := user.Event{
		Type:       user.EventTypeRegistered,
		UserID:     12,
		Email:      "ana@x.com",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, client.PublishUserEvent(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "ana@x.com", string(w.msgs[0].Key))
	decoded, err := DecodeUserEvent(w.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, ev, decoded)

	client.Close()
	assert.True(t, w.closed)
}

func TestPublishUserEvent_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	client := &KafkaProducerClient{UserEventsWriter: w, logger: logger.NewNopLogger()}

	err := client.PublishUserEvent(context.Background(), user.Event{Type: user.EventTypeRegistered})

	assert.ErrorContains(t, err, "leader not available")
}

func TestDecodeUserEvent_Invalid(t *testing.T) {
	_, err := DecodeUserEvent(kafka.Message{Value: []byte("not json")})

	assert.Error(t, err)
}
