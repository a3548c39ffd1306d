package plan

import "github.com/phrazzld/fitcircle/internal/domain"

// UnrecognizedGoal is returned by the rule tables for goals they do not know.
const UnrecognizedGoal = "Unrecognized goal. Please confirm the goal setting."

// Section headers used by FullPlanFor.
const (
	TrainingHeader = "Personalized Training Plan:"
	DietHeader     = "Personalized Diet Plan:"
)

var trainingRules = map[domain.Goal]string{
	domain.GoalMuscleGain: "Conduct 3 - 4 strength - training sessions per week, including exercises for large muscle groups such as chest, back, and legs, with each session lasting 60 - 90 minutes.",
	domain.GoalFatLoss:    "Conduct 4 - 5 aerobic exercises per week, such as running and swimming, for 30 - 60 minutes each time, combined with 2 - 3 strength - training sessions.",
	domain.GoalMaintain:   "Maintain the current training frequency and intensity.",
}

var dietRules = map[domain.Goal]string{
	domain.GoalMuscleGain: "Increase the intake of protein, such as chicken breast, eggs, and milk, while ensuring an adequate intake of carbohydrates and healthy fats.",
	domain.GoalFatLoss:    "Control calorie intake, increase the intake of vegetables and fruits, and reduce the intake of high - calorie and high - fat foods.",
	domain.GoalMaintain:   "Maintain the current diet structure and pay attention to a balanced diet.",
}

// TrainingPlanFor returns the training advice for goal.
func TrainingPlanFor(goal domain.Goal) string {
	if text, ok := trainingRules[goal]; ok {
		return text
	}
	return UnrecognizedGoal
}

// DietPlanFor returns the diet advice for goal.
func DietPlanFor(goal domain.Goal) string {
	if text, ok := dietRules[goal]; ok {
		return text
	}
	return UnrecognizedGoal
}

// FullPlanFor joins the training and diet advice for goal under their
// headers, separated by a blank line.
func FullPlanFor(goal domain.Goal) string {
	return TrainingHeader + "\n" + TrainingPlanFor(goal) + "\n\n" +
		DietHeader + "\n" + DietPlanFor(goal)
}
