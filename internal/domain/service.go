package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// ErrWorkoutNotFound is returned when a workout record cannot be located.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository captures persistence operations.
type WorkoutRepository interface {
	Create(ctx context.Context, record WorkoutRecord) error
	Get(ctx context.Context, tenantID, workoutID string) (*WorkoutRecord, error)
	ListByUser(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]WorkoutRecord, *Cursor, error)
}

// Publisher emits notifications about computed workouts.
type Publisher interface {
	Publish(ctx context.Context, record WorkoutRecord) error
}

// Service orchestrates reading dispatch, persistence and event publication.
type Service struct {
	repo      WorkoutRepository
	publisher Publisher
}

// NewService constructs a Service. The publisher may be nil when event
// publication is disabled.
func NewService(repo WorkoutRepository, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// ReadingInput captures one sensor package from the API layer.
type ReadingInput struct {
	TenantID string
	UserID   string
	Tag      string
	Readings []float64
}

// ProcessReading dispatches a sensor package, computes the summary and
// persists the result. Dispatch failures are returned as-is so the caller
// can report them; they never affect other packages.
func (s *Service) ProcessReading(ctx context.Context, input ReadingInput) (*WorkoutRecord, error) {
	workout, err := ReadPackage(input.Tag, input.Readings)
	if err != nil {
		return nil, err
	}

	record := WorkoutRecord{
		ID:        uuid.NewString(),
		TenantID:  input.TenantID,
		UserID:    input.UserID,
		Tag:       input.Tag,
		Readings:  input.Readings,
		Summary:   Summarize(workout),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	// Events are advisory; a broker outage must not fail the request.
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, record); err != nil {
			log.Printf("publish workout.computed for %s failed: %v", record.ID, err)
		}
	}

	return &record, nil
}

// GetWorkout fetches a stored record by ID.
func (s *Service) GetWorkout(ctx context.Context, tenantID, workoutID string) (*WorkoutRecord, error) {
	record, err := s.repo.Get(ctx, tenantID, workoutID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrWorkoutNotFound
	}
	return record, nil
}

// ListWorkoutsByUser fetches stored records with cursor pagination.
func (s *Service) ListWorkoutsByUser(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]WorkoutRecord, *Cursor, error) {
	return s.repo.ListByUser(ctx, tenantID, userID, cursor, limit)
}
