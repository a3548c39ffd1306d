// Package progress summarizes a user's training and diet records into short
// advisory reports.
package progress

import (
	"github.com/phrazzld/fitcircle/internal/domain"
)

// Fixed report texts.
const (
	NoTrainingData = "No training records available for analysis."
	NoDietData     = "No diet records available for analysis."

	LightIntensityAdvice    = "Your training intensity has been relatively light on average. Consider increasing it for better results."
	ModerateIntensityAdvice = "Your training intensity is moderate on average. Keep up the good work."
	HighIntensityAdvice     = "Your training intensity has been high on average. Make sure to balance it with proper rest."

	LowVarietyAdvice  = "Consider increasing the variety of foods in your diet for better nutrition."
	GoodVarietyAdvice = "Your diet has a good variety of foods, which is beneficial for balanced nutrition."

	TrainingReportHeader = "Training Progress Report:"
	DietReportHeader     = "Diet Progress Report:"
)

// VarietyThreshold is the number of distinct foods at which a diet counts
// as varied.
const VarietyThreshold = 10

// Monitor reads a user's records and reports on them. It never modifies
// the records.
type Monitor struct {
	User     *domain.User
	Training []*domain.TrainingRecord
	Diet     []*domain.DietRecord
}

// NewMonitor creates a Monitor over the given records.
func NewMonitor(user *domain.User, training []*domain.TrainingRecord, diet []*domain.DietRecord) *Monitor {
	return &Monitor{User: user, Training: training, Diet: diet}
}

// TrainingStats are the aggregates behind the training report.
type TrainingStats struct {
	Sessions        int
	AverageDuration float64
	// AverageIntensity is on the 1 (Light) to 3 (Intense) scale.
	AverageIntensity float64
}

// DietStats are the aggregates behind the diet report.
type DietStats struct {
	Meals           int
	AverageCalories float64
	// DistinctFoods counts food names exactly as written.
	DistinctFoods int
}

// TrainingStats computes training aggregates. ok is false when there are
// no training records.
func (m *Monitor) TrainingStats() (stats TrainingStats, ok bool) {
	if len(m.Training) == 0 {
		return TrainingStats{}, false
	}

	var duration, intensity float64
	for _, r := range m.Training {
		duration += r.Duration
		intensity += float64(r.Intensity.Score())
	}

	n := float64(len(m.Training))
	return TrainingStats{
		Sessions:         len(m.Training),
		AverageDuration:  duration / n,
		AverageIntensity: intensity / n,
	}, true
}

// DietStats computes diet aggregates. ok is false when there are no diet
// records.
func (m *Monitor) DietStats() (stats DietStats, ok bool) {
	if len(m.Diet) == 0 {
		return DietStats{}, false
	}

	var calories float64
	foods := make(map[string]struct{})
	for _, r := range m.Diet {
		calories += r.TotalCalories
		for _, f := range r.Foods {
			foods[f] = struct{}{}
		}
	}

	return DietStats{
		Meals:           len(m.Diet),
		AverageCalories: calories / float64(len(m.Diet)),
		DistinctFoods:   len(foods),
	}, true
}

// AnalyzeTrainingProgress reports the average session length and an
// intensity advisory.
func (m *Monitor) AnalyzeTrainingProgress() string {
	stats, ok := m.TrainingStats()
	if !ok {
		return NoTrainingData
	}

	return "Average training duration: " + domain.FormatNumber(stats.AverageDuration) + " minutes.\n" +
		intensityAdvice(stats.AverageIntensity)
}

// AnalyzeDietProgress reports the average calories per meal and a food
// variety advisory.
func (m *Monitor) AnalyzeDietProgress() string {
	stats, ok := m.DietStats()
	if !ok {
		return NoDietData
	}

	advice := GoodVarietyAdvice
	if stats.DistinctFoods < VarietyThreshold {
		advice = LowVarietyAdvice
	}

	return "You have consumed an average of " + domain.FormatNumber(stats.AverageCalories) +
		" calories per meal. " + advice
}

// ComprehensiveReport combines both analyses under section headers.
func (m *Monitor) ComprehensiveReport() string {
	return TrainingReportHeader + "\n" + m.AnalyzeTrainingProgress() + "\n\n" +
		DietReportHeader + "\n" + m.AnalyzeDietProgress()
}

func intensityAdvice(score float64) string {
	switch {
	case score < 1.5:
		return LightIntensityAdvice
	case score < 2.5:
		return ModerateIntensityAdvice
	default:
		return HighIntensityAdvice
	}
}
