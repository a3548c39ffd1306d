package domain

import "fmt"

// Goal is the fitness objective a personalized plan is built for.
type Goal string

// Supported goals.
const (
	GoalMuscleGain Goal = "Muscle Gain"
	GoalFatLoss    Goal = "Fat Loss"
	GoalMaintain   Goal = "Maintain the Current State"
)

// Goals lists every supported goal in prompt order.
func Goals() []Goal {
	return []Goal{GoalMuscleGain, GoalFatLoss, GoalMaintain}
}

// ParseGoal matches s exactly against the supported goals.
func ParseGoal(s string) (Goal, error) {
	for _, g := range Goals() {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
}
