package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherFamily(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func counterValue(family *dto.MetricFamily, label, value string) float64 {
	for _, metric := range family.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == label && pair.GetValue() == value {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecordWorkoutComputed(t *testing.T) {
	RecordWorkoutComputed("Running")
	RecordWorkoutComputed("Running")
	RecordWorkoutComputed("Swimming")

	family := gatherFamily(t, "ftracker_workouts_computed_total")
	require.NotNil(t, family)
	assert.GreaterOrEqual(t, counterValue(family, "kind", "Running"), 2.0)
	assert.GreaterOrEqual(t, counterValue(family, "kind", "Swimming"), 1.0)
}

func TestRecordReadingRejected(t *testing.T) {
	RecordReadingRejected("unknown_workout_type")

	family := gatherFamily(t, "ftracker_workouts_readings_rejected_total")
	require.NotNil(t, family)
	assert.GreaterOrEqual(t, counterValue(family, "reason", "unknown_workout_type"), 1.0)
}

func TestRecordWorkoutPersisted(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	RecordWorkoutPersisted(ts)

	family := gatherFamily(t, "ftracker_persistence_last_workout_persisted_timestamp_seconds")
	require.NotNil(t, family)
	require.Len(t, family.GetMetric(), 1)
	assert.Equal(t, float64(ts.Unix()), family.GetMetric()[0].GetGauge().GetValue())

	// A zero timestamp must not move the watermark.
	RecordWorkoutPersisted(time.Time{})
	family = gatherFamily(t, "ftracker_persistence_last_workout_persisted_timestamp_seconds")
	assert.Equal(t, float64(ts.Unix()), family.GetMetric()[0].GetGauge().GetValue())
}
