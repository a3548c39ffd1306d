package journal

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/mocks"
	"github.com/phrazzld/fitcircle/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)

func newJournal() *Journal {
	return New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddAndList(t *testing.T) {
	t.Parallel()
	j := newJournal()

	tr, err := domain.NewTrainingRecord(1, day, 60, "weightlifting", domain.IntensityModerate, 3, 10)
	require.NoError(t, err)
	dr, err := domain.NewDietRecord(1, day, "Breakfast", []string{"apple"}, []float64{1}, 95)
	require.NoError(t, err)

	require.NoError(t, j.AddTraining(tr))
	require.NoError(t, j.AddDiet(dr))

	assert.Equal(t, []*domain.TrainingRecord{tr}, j.Training())
	assert.Equal(t, []*domain.DietRecord{dr}, j.Diet())

	assert.ErrorIs(t, j.AddTraining(nil), ErrNilRecord)
	assert.ErrorIs(t, j.AddDiet(nil), ErrNilRecord)

	bad := *tr
	bad.Intensity = "Heroic"
	assert.ErrorIs(t, j.AddTraining(&bad), domain.ErrInvalidIntensity)
	assert.Len(t, j.Training(), 1)
}

func TestRemoveRecords(t *testing.T) {
	t.Parallel()
	j := newJournal()

	for id := 1; id <= 3; id++ {
		tr, err := domain.NewTrainingRecord(id, day, 30, "running", domain.IntensityLight, 0, 0)
		require.NoError(t, err)
		require.NoError(t, j.AddTraining(tr))
	}

	assert.True(t, j.RemoveTraining(2))
	assert.False(t, j.RemoveTraining(2))
	ids := []int{}
	for _, r := range j.Training() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)

	dr, err := domain.NewDietRecord(9, day, "Dinner", nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, j.AddDiet(dr))
	assert.True(t, j.RemoveDiet(9))
	assert.Empty(t, j.Diet())
}

func TestUpdateDietFoods(t *testing.T) {
	t.Parallel()
	j := newJournal()

	dr, err := domain.NewDietRecord(4, day, "Lunch", []string{"rice"}, []float64{1}, 200)
	require.NoError(t, err)
	require.NoError(t, j.AddDiet(dr))

	require.NoError(t, j.UpdateDietFoods(4, []string{"rice", "beans"}, []float64{1, 1}, 450))
	assert.Equal(t, []string{"rice", "beans"}, j.Diet()[0].Foods)
	assert.Equal(t, 450.0, j.Diet()[0].TotalCalories)

	assert.ErrorIs(t, j.UpdateDietFoods(4, []string{"rice"}, nil, 1), domain.ErrFoodQuantityMismatch)
	assert.ErrorIs(t, j.UpdateDietFoods(5, nil, nil, 0), ErrRecordNotFound)
}

const recordsYAML = `
training:
  - record_id: 1
    date: 2025-02-20
    duration: 60
    exercise_type: weightlifting
    intensity: Moderate
    sets: 3
    reps: 10
diet:
  - record_id: 1
    date: 2025-02-20
    meal_type: Breakfast
    foods: [apple, banana]
    quantities: [1, 2]
    total_calories: 300
`

func TestImport(t *testing.T) {
	t.Parallel()
	j := newJournal()

	nTraining, nDiet, err := j.Import(strings.NewReader(recordsYAML))
	require.NoError(t, err)
	assert.Equal(t, 1, nTraining)
	assert.Equal(t, 1, nDiet)

	tr := j.Training()[0]
	assert.Equal(t, 1, tr.ID)
	assert.True(t, day.Equal(tr.Date))
	assert.Equal(t, 60.0, tr.Duration)
	assert.Equal(t, domain.IntensityModerate, tr.Intensity)
	assert.Equal(t, 10, tr.Reps)

	dr := j.Diet()[0]
	assert.Equal(t, "Breakfast", dr.MealType)
	assert.Equal(t, []string{"apple", "banana"}, dr.Foods)
	assert.Equal(t, []float64{1, 2}, dr.Quantities)

	assert.Equal(t,
		"Training Progress Report:\n"+
			"Average training duration: 60 minutes.\n"+
			"Your training intensity is moderate on average. Keep up the good work.\n\n"+
			"Diet Progress Report:\n"+
			"You have consumed an average of 300 calories per meal. "+
			"Consider increasing the variety of foods in your diet for better nutrition.",
		j.Monitor().ComprehensiveReport())
}

func TestImportIsAllOrNothing(t *testing.T) {
	t.Parallel()
	j := newJournal()

	invalid := recordsYAML + `
  - record_id: 2
    date: 2025-02-21
    meal_type: Lunch
    foods: [rice]
    quantities: [1, 2]
    total_calories: 500
`
	_, _, err := j.Import(strings.NewReader(invalid))
	assert.ErrorIs(t, err, domain.ErrFoodQuantityMismatch)
	assert.Empty(t, j.Training())
	assert.Empty(t, j.Diet())

	_, _, err = j.Import(strings.NewReader("training: [oops"))
	assert.Error(t, err)
}

func TestImportEmptyDocument(t *testing.T) {
	t.Parallel()
	nTraining, nDiet, err := newJournal().Import(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, nTraining)
	assert.Zero(t, nDiet)
}

func TestPlanner(t *testing.T) {
	t.Parallel()
	j := newJournal()
	_, _, err := j.Import(strings.NewReader(recordsYAML))
	require.NoError(t, err)

	p := j.Planner(&mocks.MockPrompter{Answers: []string{"Fat Loss"}})
	assert.Len(t, p.Training, 1)
	assert.Len(t, p.Diet, 1)

	text, err := p.GenerateDietPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, plan.DietPlanFor(domain.GoalFatLoss), text)
}
