package mocks

import (
	"context"

	"github.com/phrazzld/fitcircle/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockObserver is a mock of events.Observer for use with testify/mock.
type MockObserver struct {
	mock.Mock
}

// Update is a mock implementation of events.Observer.Update
func (m *MockObserver) Update(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// RecordingObserver appends every received event to a shared log, tagged
// with its own name. It is useful for asserting delivery order across
// several observers.
type RecordingObserver struct {
	Name string
	Log  *[]string
	Err  error
}

// Update implements events.Observer.
func (r *RecordingObserver) Update(_ context.Context, event *events.Event) error {
	*r.Log = append(*r.Log, r.Name+":"+string(event.Type))
	return r.Err
}
