package domain

import (
	"errors"
	"fmt"
)

// Workout type tags as emitted by the sensor firmware.
const (
	TagSwimming = "SWM"
	TagRunning  = "RUN"
	TagWalking  = "WLK"
)

var (
	// ErrUnknownWorkoutType is returned for a tag outside the recognized set.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidParamCount is returned when a reading package has the wrong length.
	ErrInvalidParamCount = errors.New("invalid parameter count")
	// ErrInvalidReading is returned when a reading value cannot feed the formulas.
	ErrInvalidReading = errors.New("invalid sensor reading")
)

// paramCounts maps each tag to the exact number of readings it requires.
var paramCounts = map[string]int{
	TagSwimming: 5, // action, duration, weight, pool length, pool count
	TagRunning:  3, // action, duration, weight
	TagWalking:  4, // action, duration, weight, height
}

// UnknownTypeError carries the unrecognized tag.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Tag)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownWorkoutType }

// ParamCountError carries the tag and the offending sequence so callers can
// render a diagnostic.
type ParamCountError struct {
	Tag  string
	Want int
	Got  []float64
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("workout type %q expects %d readings, got %d %v", e.Tag, e.Want, len(e.Got), e.Got)
}

func (e *ParamCountError) Unwrap() error { return ErrInvalidParamCount }

// ReadingError reports a reading value a formula cannot accept, such as a
// non-positive duration that would become a zero divisor.
type ReadingError struct {
	Kind  Kind
	Field string
	Value float64
}

func (e *ReadingError) Error() string {
	return fmt.Sprintf("%s: %s reading out of range: %v", e.Kind, e.Field, e.Value)
}

func (e *ReadingError) Unwrap() error { return ErrInvalidReading }

// ReadPackage resolves a sensor package into a constructed workout variant.
// The readings are positional: action count, duration in hours, weight in kg,
// then the variant extras in declaration order. Either every reading passes
// count and range validation and a ready variant is returned, or no variant
// is constructed at all.
func ReadPackage(tag string, readings []float64) (Workout, error) {
	want, ok := paramCounts[tag]
	if !ok {
		return nil, &UnknownTypeError{Tag: tag}
	}
	if len(readings) != want {
		return nil, &ParamCountError{Tag: tag, Want: want, Got: readings}
	}

	switch tag {
	case TagRunning:
		w, err := NewRunning(int(readings[0]), readings[1], readings[2])
		if err != nil {
			return nil, err
		}
		return w, nil
	case TagWalking:
		w, err := NewWalking(int(readings[0]), readings[1], readings[2], readings[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		w, err := NewSwimming(int(readings[0]), readings[1], readings[2], readings[3], int(readings[4]))
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}
