package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/ftracker/internal/domain"
)

type stubWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *stubWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

func sampleRecord() domain.WorkoutRecord {
	return domain.WorkoutRecord{
		ID:       "wk-1",
		TenantID: "tenant-1",
		UserID:   "user-1",
		Tag:      domain.TagSwimming,
		Readings: []float64{720, 1, 80, 25, 40},
		Summary: domain.Summary{
			Kind:      domain.KindSwimming,
			Duration:  1,
			Distance:  0.9936,
			MeanSpeed: 1,
			Calories:  336,
		},
		CreatedAt: time.Date(2026, time.February, 10, 8, 30, 0, 0, time.UTC),
	}
}

func TestPublishBuildsKeyedMessage(t *testing.T) {
	writer := &stubWriter{}
	producer := &Producer{writer: writer}

	err := producer.Publish(context.Background(), sampleRecord())
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("user-1"), msg.Key)
	assert.Equal(t, time.Date(2026, time.February, 10, 8, 30, 0, 0, time.UTC), msg.Time)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, EventTypeWorkoutComputed, headers["event_type"])
	assert.Equal(t, "tenant-1", headers["tenant_id"])

	assert.JSONEq(t, `{
		"workout_id": "wk-1",
		"tenant_id": "tenant-1",
		"user_id": "user-1",
		"workout_type": "SWM",
		"kind": "Swimming",
		"duration_h": 1,
		"distance_km": 0.9936,
		"mean_speed_kmh": 1,
		"calories": 336,
		"occurred_at": "2026-02-10T08:30:00Z"
	}`, string(msg.Value))
}

func TestPublishPropagatesWriterError(t *testing.T) {
	writer := &stubWriter{err: errors.New("broker unreachable")}
	producer := &Producer{writer: writer}

	err := producer.Publish(context.Background(), sampleRecord())
	require.Error(t, err)
}

func TestCloseReleasesWriter(t *testing.T) {
	writer := &stubWriter{}
	producer := &Producer{writer: writer}

	require.NoError(t, producer.Close())
	assert.True(t, writer.closed)
}
