package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
)

// DefaultPrompt asks the user to pick a goal.
const DefaultPrompt = "Please enter your goal (Muscle Gain/Fat Loss/Maintain the Current State): "

// InvalidGoalMessage is sent to a Notifier after a rejected answer.
const InvalidGoalMessage = "Invalid input. Please enter 'Muscle Gain', 'Fat Loss', or 'Maintain the Current State'."

// ErrNoPrompter is returned when a Planner has no Prompter to ask.
var ErrNoPrompter = errors.New("no prompter configured")

// Prompter asks the user a question and returns the answer.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Notifier is implemented by Prompters that can also show a message without
// waiting for an answer. The Planner uses it to explain rejected answers.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Planner produces personalized plans for one user. It holds the user's
// records for context but never modifies them.
type Planner struct {
	User     *domain.User
	Training []*domain.TrainingRecord
	Diet     []*domain.DietRecord

	prompter Prompter
	prompt   string
	logger   *slog.Logger

	// asking serializes prompts so only one is outstanding at a time.
	asking sync.Mutex
}

// Option configures a Planner.
type Option func(*Planner)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(p *Planner) {
		if prompt != "" {
			p.prompt = prompt
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger.OrDefault(l)
	}
}

// NewPlanner creates a Planner for user that asks prompter for goals.
func NewPlanner(
	user *domain.User,
	training []*domain.TrainingRecord,
	diet []*domain.DietRecord,
	prompter Prompter,
	opts ...Option,
) *Planner {
	p := &Planner{
		User:     user,
		Training: training,
		Diet:     diet,
		prompter: prompter,
		prompt:   DefaultPrompt,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "planner")
	return p
}

// Goal asks for the user's goal until a supported one is given. Invalid
// answers are never returned as errors; only a failing Prompter or a done
// context ends the loop early.
func (p *Planner) Goal(ctx context.Context) (domain.Goal, error) {
	if p.prompter == nil {
		return "", ErrNoPrompter
	}

	p.asking.Lock()
	defer p.asking.Unlock()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		answer, err := p.prompter.Ask(ctx, p.prompt)
		if err != nil {
			p.logger.Error("failed to read goal", "error", err, "attempt", attempt)
			return "", fmt.Errorf("failed to read goal: %w", err)
		}

		goal, err := domain.ParseGoal(answer)
		if err == nil {
			p.logger.Debug("goal selected", "goal", goal, "attempts", attempt)
			return goal, nil
		}

		p.logger.Warn("rejected goal", "answer", answer, "attempt", attempt)
		if n, ok := p.prompter.(Notifier); ok {
			if err := n.Notify(ctx, InvalidGoalMessage); err != nil {
				return "", fmt.Errorf("failed to report invalid goal: %w", err)
			}
		}
	}
}

// GenerateTrainingPlan asks for a goal and returns the matching training advice.
func (p *Planner) GenerateTrainingPlan(ctx context.Context) (string, error) {
	goal, err := p.Goal(ctx)
	if err != nil {
		return "", err
	}
	return TrainingPlanFor(goal), nil
}

// GenerateDietPlan asks for a goal and returns the matching diet advice.
func (p *Planner) GenerateDietPlan(ctx context.Context) (string, error) {
	goal, err := p.Goal(ctx)
	if err != nil {
		return "", err
	}
	return DietPlanFor(goal), nil
}

// FullPlan asks for a goal once and returns both sections of the plan.
func (p *Planner) FullPlan(ctx context.Context) (string, error) {
	goal, err := p.Goal(ctx)
	if err != nil {
		return "", err
	}
	return FullPlanFor(goal), nil
}

// Result is the outcome of an asynchronous plan request.
type Result struct {
	Plan string
	Err  error
}

// FullPlanAsync runs FullPlan in its own goroutine and delivers the outcome
// on the returned channel, which receives exactly one value and is then
// closed. Concurrent requests on the same Planner wait for each other's
// prompts.
func (p *Planner) FullPlanAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		plan, err := p.FullPlan(ctx)
		out <- Result{Plan: plan, Err: err}
	}()
	return out
}
