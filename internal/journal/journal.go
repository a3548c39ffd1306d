// Package journal keeps a user's training and diet records and hands them to
// the progress monitor and plan generator.
package journal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/plan"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
	"github.com/phrazzld/fitcircle/internal/progress"
	"gopkg.in/yaml.v3"
)

// Journal errors.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNilRecord      = errors.New("record cannot be nil")
)

// Journal holds one user's records in the order they were added.
type Journal struct {
	User *domain.User

	mu       sync.RWMutex
	training []*domain.TrainingRecord
	diet     []*domain.DietRecord
	logger   *slog.Logger
}

// New creates an empty Journal for user.
func New(user *domain.User, l *slog.Logger) *Journal {
	return &Journal{
		User:     user,
		training: make([]*domain.TrainingRecord, 0),
		diet:     make([]*domain.DietRecord, 0),
		logger:   logger.OrDefault(l).With("component", "journal"),
	}
}

// AddTraining validates and appends a training record.
func (j *Journal) AddTraining(r *domain.TrainingRecord) error {
	if r == nil {
		return ErrNilRecord
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid training record %d: %w", r.ID, err)
	}

	j.mu.Lock()
	j.training = append(j.training, r)
	j.mu.Unlock()

	j.logger.Debug("training record added", "record_id", r.ID, "exercise_type", r.ExerciseType)
	return nil
}

// AddDiet validates and appends a diet record.
func (j *Journal) AddDiet(r *domain.DietRecord) error {
	if r == nil {
		return ErrNilRecord
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid diet record %d: %w", r.ID, err)
	}

	j.mu.Lock()
	j.diet = append(j.diet, r)
	j.mu.Unlock()

	j.logger.Debug("diet record added", "record_id", r.ID, "meal_type", r.MealType)
	return nil
}

// Training returns the training records in insertion order.
func (j *Journal) Training() []*domain.TrainingRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*domain.TrainingRecord, len(j.training))
	copy(out, j.training)
	return out
}

// Diet returns the diet records in insertion order.
func (j *Journal) Diet() []*domain.DietRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*domain.DietRecord, len(j.diet))
	copy(out, j.diet)
	return out
}

// RemoveTraining removes the first training record with the given ID.
func (j *Journal) RemoveTraining(id int) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, r := range j.training {
		if r.ID == id {
			j.training = append(j.training[:i], j.training[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveDiet removes the first diet record with the given ID.
func (j *Journal) RemoveDiet(id int) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, r := range j.diet {
		if r.ID == id {
			j.diet = append(j.diet[:i], j.diet[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateDietFoods replaces the foods of the first diet record with the given ID.
func (j *Journal) UpdateDietFoods(id int, foods []string, quantities []float64, totalCalories float64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, r := range j.diet {
		if r.ID != id {
			continue
		}
		if err := r.UpdateFoods(foods, quantities, totalCalories); err != nil {
			return fmt.Errorf("failed to update diet record %d: %w", id, err)
		}
		j.logger.Debug("diet record updated", "record_id", id, "food_count", len(foods))
		return nil
	}
	return fmt.Errorf("diet record %d: %w", id, ErrRecordNotFound)
}

// Monitor returns a progress monitor over a snapshot of the records.
func (j *Journal) Monitor() *progress.Monitor {
	return progress.NewMonitor(j.User, j.Training(), j.Diet())
}

// Planner returns a plan generator over a snapshot of the records.
func (j *Journal) Planner(prompter plan.Prompter, opts ...plan.Option) *plan.Planner {
	return plan.NewPlanner(j.User, j.Training(), j.Diet(), prompter, opts...)
}

// document is the YAML layout accepted by Import.
type document struct {
	Training []domain.TrainingRecord `yaml:"training"`
	Diet     []domain.DietRecord     `yaml:"diet"`
}

// Import reads records from YAML of the form
//
//	training:
//	  - record_id: 1
//	    date: 2025-02-20
//	    duration: 60
//	    exercise_type: weightlifting
//	    intensity: Moderate
//	    sets: 3
//	    reps: 10
//	diet:
//	  - record_id: 1
//	    date: 2025-02-20
//	    meal_type: Breakfast
//	    foods: [apple, banana]
//	    quantities: [1, 2]
//	    total_calories: 300
//
// Every record is validated before any is added; on error the journal is
// unchanged. It returns the number of training and diet records added.
func (j *Journal) Import(r io.Reader) (trainingCount, dietCount int, err error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return 0, 0, fmt.Errorf("failed to decode records: %w", err)
	}

	training := make([]*domain.TrainingRecord, 0, len(doc.Training))
	for i := range doc.Training {
		rec := &doc.Training[i]
		if err := rec.Validate(); err != nil {
			return 0, 0, fmt.Errorf("invalid training record %d: %w", rec.ID, err)
		}
		training = append(training, rec)
	}

	diet := make([]*domain.DietRecord, 0, len(doc.Diet))
	for i := range doc.Diet {
		rec := &doc.Diet[i]
		if err := rec.Validate(); err != nil {
			return 0, 0, fmt.Errorf("invalid diet record %d: %w", rec.ID, err)
		}
		diet = append(diet, rec)
	}

	j.mu.Lock()
	j.training = append(j.training, training...)
	j.diet = append(j.diet, diet...)
	j.mu.Unlock()

	j.logger.Info("records imported",
		"training_count", len(training),
		"diet_count", len(diet))

	return len(training), len(diet), nil
}
