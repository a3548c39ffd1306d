package mocks

import (
	"context"
	"errors"
)

// ErrNoMoreAnswers is returned by MockPrompter once its script is exhausted.
var ErrNoMoreAnswers = errors.New("no more scripted answers")

// MockPrompter implements plan.Prompter by replaying scripted answers.
type MockPrompter struct {
	// Answers are returned in order, one per Ask call
	Answers []string

	// Err, when set, is returned instead of the next answer
	Err error

	// Prompts records every prompt passed to Ask
	Prompts []string

	// Notices records every message passed to Notify
	Notices []string

	// NotifyErr is returned from Notify
	NotifyErr error
}

// Ask implements the plan.Prompter interface
func (m *MockPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Prompts) > len(m.Answers) {
		return "", ErrNoMoreAnswers
	}
	return m.Answers[len(m.Prompts)-1], nil
}

// Notify implements the plan.Notifier interface by recording message.
func (m *MockPrompter) Notify(ctx context.Context, message string) error {
	m.Notices = append(m.Notices, message)
	return m.NotifyErr
}
