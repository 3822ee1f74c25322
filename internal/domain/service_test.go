package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	created []WorkoutRecord
	stored  map[string]WorkoutRecord
	failing bool
}

func (r *recordingRepo) Create(ctx context.Context, record WorkoutRecord) error {
	if r.failing {
		return errors.New("repo down")
	}
	r.created = append(r.created, record)
	return nil
}

func (r *recordingRepo) Get(ctx context.Context, tenantID, workoutID string) (*WorkoutRecord, error) {
	record, ok := r.stored[workoutID]
	if !ok || record.TenantID != tenantID {
		return nil, nil
	}
	return &record, nil
}

func (r *recordingRepo) ListByUser(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]WorkoutRecord, *Cursor, error) {
	return nil, nil, nil
}

type recordingPublisher struct {
	published []WorkoutRecord
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, record WorkoutRecord) error {
	p.published = append(p.published, record)
	return p.err
}

func TestProcessReadingPersistsAndPublishes(t *testing.T) {
	repo := &recordingRepo{}
	publisher := &recordingPublisher{}
	service := NewService(repo, publisher)

	record, err := service.ProcessReading(context.Background(), ReadingInput{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Tag:      TagSwimming,
		Readings: []float64{720, 1, 80, 25, 40},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "tenant-1", record.TenantID)
	assert.Equal(t, KindSwimming, record.Summary.Kind)
	assert.InDelta(t, 336.0, record.Summary.Calories, 1e-9)
	assert.False(t, record.CreatedAt.IsZero())

	require.Len(t, repo.created, 1)
	assert.Equal(t, record.ID, repo.created[0].ID)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, record.ID, publisher.published[0].ID)
}

func TestProcessReadingDispatchFailureSkipsRepo(t *testing.T) {
	repo := &recordingRepo{}
	service := NewService(repo, &recordingPublisher{})

	record, err := service.ProcessReading(context.Background(), ReadingInput{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Tag:      "XYZ",
		Readings: []float64{1, 2, 3},
	})
	require.ErrorIs(t, err, ErrUnknownWorkoutType)
	assert.Nil(t, record)
	assert.Empty(t, repo.created)
}

func TestProcessReadingPublishFailureIsNonFatal(t *testing.T) {
	repo := &recordingRepo{}
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	service := NewService(repo, publisher)

	record, err := service.ProcessReading(context.Background(), ReadingInput{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Tag:      TagRunning,
		Readings: []float64{15000, 1, 75},
	})
	require.NoError(t, err)
	assert.NotNil(t, record)
	require.Len(t, repo.created, 1)
}

func TestProcessReadingWithoutPublisher(t *testing.T) {
	repo := &recordingRepo{}
	service := NewService(repo, nil)

	_, err := service.ProcessReading(context.Background(), ReadingInput{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Tag:      TagWalking,
		Readings: []float64{9000, 1, 75, 180},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

func TestGetWorkoutNotFound(t *testing.T) {
	repo := &recordingRepo{stored: map[string]WorkoutRecord{}}
	service := NewService(repo, nil)

	_, err := service.GetWorkout(context.Background(), "tenant-1", "missing")
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetWorkoutEnforcesTenant(t *testing.T) {
	repo := &recordingRepo{stored: map[string]WorkoutRecord{
		"w-1": {ID: "w-1", TenantID: "tenant-1"},
	}}
	service := NewService(repo, nil)

	record, err := service.GetWorkout(context.Background(), "tenant-1", "w-1")
	require.NoError(t, err)
	assert.Equal(t, "w-1", record.ID)

	_, err = service.GetWorkout(context.Background(), "tenant-2", "w-1")
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}
