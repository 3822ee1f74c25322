package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsComputedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "workouts",
		Name:      "computed_total",
		Help:      "Workout summaries computed successfully, by workout kind.",
	}, []string{"kind"})
	readingsRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "workouts",
		Name:      "readings_rejected_total",
		Help:      "Reading packages rejected by the dispatcher, by failure reason.",
	}, []string{"reason"})
	workoutPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ftracker",
		Subsystem: "persistence",
		Name:      "last_workout_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout record persisted to Postgres.",
	})
)

func init() {
	prometheus.MustRegister(workoutsComputedCounter, readingsRejectedCounter, workoutPersistGauge)
}

// RecordWorkoutComputed counts one successfully computed workout.
func RecordWorkoutComputed(kind string) {
	workoutsComputedCounter.WithLabelValues(kind).Inc()
}

// RecordReadingRejected counts one rejected reading package.
func RecordReadingRejected(reason string) {
	readingsRejectedCounter.WithLabelValues(reason).Inc()
}

// RecordWorkoutPersisted updates the persistence watermark gauge.
func RecordWorkoutPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutPersistGauge.Set(float64(ts.Unix()))
}
