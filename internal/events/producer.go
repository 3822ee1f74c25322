package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"example.com/ftracker/internal/domain"
)

// messageWriter is the slice of kafka.Writer the producer depends on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes workout.computed events to a single topic. Messages are
// keyed by user so per-user ordering survives partitioning.
type Producer struct {
	writer messageWriter
}

// NewProducer creates a Producer writing to the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// Publish emits a workout.computed event for the record.
func (p *Producer) Publish(ctx context.Context, record domain.WorkoutRecord) error {
	payload := WorkoutComputed{
		WorkoutID:    record.ID,
		TenantID:     record.TenantID,
		UserID:       record.UserID,
		WorkoutType:  record.Tag,
		Kind:         string(record.Summary.Kind),
		DurationH:    record.Summary.Duration,
		DistanceKm:   record.Summary.Distance,
		MeanSpeedKmh: record.Summary.MeanSpeed,
		Calories:     record.Summary.Calories,
		OccurredAt:   record.CreatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(record.UserID),
		Value: body,
		Time:  record.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeWorkoutComputed)},
			{Key: "tenant_id", Value: []byte(record.TenantID)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

// Close releases the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
