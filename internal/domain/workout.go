// Package domain defines the workout calculation model and business logic.
package domain

import (
	"fmt"
	"math"
)

// Kind identifies one of the supported workout variants. The value doubles as
// the display name used in rendered summaries.
type Kind string

const (
	KindRunning  Kind = "Running"
	KindWalking  Kind = "WalkingWithLoad"
	KindSwimming Kind = "Swimming"
)

const (
	stepLengthM   = 0.65 // metres covered by one step
	strokeLengthM = 1.38 // metres covered by one swim stroke
	mInKm         = 1000
	minInHour     = 60

	runningSpeedMultiplier = 18
	runningSpeedShift      = 20

	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Workout is the sealed set of workout variants. Every variant carries its own
// calorie formula; there is no instantiable base, so a missing override is a
// compile error rather than a runtime surprise.
type Workout interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	Calories() float64

	sealed()
}

// session holds the sensor readings shared by every variant.
type session struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

func newSession(kind Kind, action int, duration, weight float64) (session, error) {
	if duration <= 0 {
		return session{}, &ReadingError{Kind: kind, Field: "duration", Value: duration}
	}
	if weight <= 0 {
		return session{}, &ReadingError{Kind: kind, Field: "weight", Value: weight}
	}
	return session{action: action, duration: duration, weight: weight}, nil
}

func (s session) Duration() float64 { return s.duration }

func (s session) sealed() {}

func (s session) distance(stepLen float64) float64 {
	return float64(s.action) * stepLen / mInKm
}

// Running is a plain run; it needs no readings beyond the shared set.
type Running struct {
	session
}

// NewRunning validates the readings and constructs a running workout.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	s, err := newSession(KindRunning, action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{session: s}, nil
}

func (r *Running) Kind() Kind { return KindRunning }

func (r *Running) Distance() float64 { return r.distance(stepLengthM) }

func (r *Running) MeanSpeed() float64 { return r.Distance() / r.duration }

func (r *Running) Calories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() - runningSpeedShift) * r.weight / mInKm * (r.duration * minInHour)
}

// Walking is sports walking with the athlete's height as an extra reading.
type Walking struct {
	session
	height float64 // cm
}

// NewWalking validates the readings and constructs a walking workout.
func NewWalking(action int, duration, weight, height float64) (*Walking, error) {
	s, err := newSession(KindWalking, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, &ReadingError{Kind: KindWalking, Field: "height", Value: height}
	}
	return &Walking{session: s, height: height}, nil
}

func (w *Walking) Kind() Kind { return KindWalking }

func (w *Walking) Distance() float64 { return w.distance(stepLengthM) }

func (w *Walking) MeanSpeed() float64 { return w.Distance() / w.duration }

// Calories floor-divides squared speed by height; the truncation is part of
// the calibrated formula and changing it changes the result.
func (w *Walking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkingWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedMultiplier*w.weight) * (w.duration * minInHour)
}

// Swimming tracks pool laps; distance and speed come from pool geometry
// rather than the stroke count.
type Swimming struct {
	session
	poolLength float64 // metres
	poolCount  int
}

// NewSwimming validates the readings and constructs a swimming workout.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	s, err := newSession(KindSwimming, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if poolLength <= 0 {
		return nil, &ReadingError{Kind: KindSwimming, Field: "pool length", Value: poolLength}
	}
	if poolCount < 0 {
		return nil, &ReadingError{Kind: KindSwimming, Field: "pool count", Value: float64(poolCount)}
	}
	return &Swimming{session: s, poolLength: poolLength, poolCount: poolCount}, nil
}

func (s *Swimming) Kind() Kind { return KindSwimming }

func (s *Swimming) Distance() float64 { return s.distance(strokeLengthM) }

func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / mInKm / s.duration
}

func (s *Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.weight
}

// Summary is the derived, display-ready report for a single workout.
type Summary struct {
	Kind      Kind    `json:"kind"`
	Duration  float64 `json:"duration_h"`
	Distance  float64 `json:"distance_km"`
	MeanSpeed float64 `json:"mean_speed_kmh"`
	Calories  float64 `json:"calories"`
}

// Summarize computes the full report for a workout in one pass.
func Summarize(w Workout) Summary {
	return Summary{
		Kind:      w.Kind(),
		Duration:  w.Duration(),
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  w.Calories(),
	}
}

// String renders the summary line with fixed three-decimal formatting.
func (s Summary) String() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		s.Kind, s.Duration, s.Distance, s.MeanSpeed, s.Calories,
	)
}
