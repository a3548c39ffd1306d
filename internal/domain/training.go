package domain

import (
	"fmt"
	"time"
)

// Intensity is the perceived effort of a training session.
type Intensity string

// Supported intensities.
const (
	IntensityLight    Intensity = "Light"
	IntensityModerate Intensity = "Moderate"
	IntensityIntense  Intensity = "Intense"
)

// Score maps an intensity onto the 1-3 scale used for progress analysis.
// Unknown intensities score 0.
func (i Intensity) Score() int {
	switch i {
	case IntensityLight:
		return 1
	case IntensityModerate:
		return 2
	case IntensityIntense:
		return 3
	default:
		return 0
	}
}

// Valid reports whether i is one of the supported intensities.
func (i Intensity) Valid() bool {
	return i.Score() > 0
}

// TrainingRecord describes one training session.
type TrainingRecord struct {
	Record       `yaml:",inline"`
	Duration     float64   `json:"duration"      yaml:"duration"      validate:"gte=0"` // minutes
	ExerciseType string    `json:"exercise_type" yaml:"exercise_type" validate:"required"`
	Intensity    Intensity `json:"intensity"     yaml:"intensity"`
	Sets         int       `json:"sets"          yaml:"sets"          validate:"gte=0"`
	Reps         int       `json:"reps"          yaml:"reps"          validate:"gte=0"`
}

// NewTrainingRecord creates a validated TrainingRecord.
func NewTrainingRecord(
	id int,
	date time.Time,
	duration float64,
	exerciseType string,
	intensity Intensity,
	sets, reps int,
) (*TrainingRecord, error) {
	r := &TrainingRecord{
		Record:       Record{ID: id, Date: date},
		Duration:     duration,
		ExerciseType: exerciseType,
		Intensity:    intensity,
		Sets:         sets,
		Reps:         reps,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the TrainingRecord has valid data.
func (r *TrainingRecord) Validate() error {
	if err := r.Record.validate(); err != nil {
		return err
	}

	if !r.Intensity.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidIntensity, r.Intensity)
	}

	return validateStruct(r)
}

// Details returns a multi-line description of the session.
func (r *TrainingRecord) Details() string {
	return fmt.Sprintf("%s\n"+
		"Training Duration: %s minutes\n"+
		"Exercise Type: %s\n"+
		"Training Intensity: %s\n"+
		"Number of Sets: %d\n"+
		"Repetitions per Set: %d",
		r.BasicInfo(),
		FormatNumber(r.Duration),
		r.ExerciseType,
		r.Intensity,
		r.Sets,
		r.Reps)
}
