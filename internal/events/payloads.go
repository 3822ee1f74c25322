// Package events publishes workout notifications to Kafka.
package events

import "time"

// EventTypeWorkoutComputed is the event_type header value for computed workouts.
const EventTypeWorkoutComputed = "workout.computed"

// WorkoutComputed represents the message emitted after a reading package has
// been dispatched, computed and persisted.
type WorkoutComputed struct {
	WorkoutID    string    `json:"workout_id"`
	TenantID     string    `json:"tenant_id"`
	UserID       string    `json:"user_id"`
	WorkoutType  string    `json:"workout_type"`
	Kind         string    `json:"kind"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	MeanSpeedKmh float64   `json:"mean_speed_kmh"`
	Calories     float64   `json:"calories"`
	OccurredAt   time.Time `json:"occurred_at"`
}
