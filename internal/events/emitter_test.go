package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/fitcircle/internal/events"
	"github.com/phrazzld/fitcircle/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taggedObserver has a value receiver and a slice field, so its values
// cannot be compared with ==.
type taggedObserver struct {
	tags  []string
	count *int
}

func (o taggedObserver) Update(context.Context, *events.Event) error {
	*o.count++
	return nil
}

func TestSubject(t *testing.T) {
	// Create a minimal logger that discards output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("notify with no observers", func(t *testing.T) {
		subject := events.NewSubject(logger)
		event := events.NewEvent(events.MemberAdded, "alice", time.Now())

		assert.NoError(t, subject.Notify(ctx, event))
	})

	t.Run("observers receive events in subscription order", func(t *testing.T) {
		subject := events.NewSubject(logger)
		var log []string
		a := &mocks.RecordingObserver{Name: "A", Log: &log}
		b := &mocks.RecordingObserver{Name: "B", Log: &log}

		require.True(t, subject.AddObserver(a))
		require.True(t, subject.AddObserver(b))

		err := subject.Notify(ctx, events.NewEvent(events.MemberAdded, "alice", time.Now()))
		require.NoError(t, err)
		assert.Equal(t, []string{"A:memberAdded", "B:memberAdded"}, log)
	})

	t.Run("adding the same observer twice is a no-op", func(t *testing.T) {
		subject := events.NewSubject(logger)
		observer := &mocks.MockObserver{}
		observer.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		assert.True(t, subject.AddObserver(observer))
		assert.False(t, subject.AddObserver(observer))
		assert.Equal(t, 1, subject.Len())

		require.NoError(t, subject.Notify(ctx, events.NewEvent(events.PostCreated, nil, time.Now())))
		observer.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("nil observer is ignored", func(t *testing.T) {
		subject := events.NewSubject(logger)
		assert.False(t, subject.AddObserver(nil))
		assert.Equal(t, 0, subject.Len())
	})

	t.Run("non-comparable observer is rejected", func(t *testing.T) {
		subject := events.NewSubject(logger)
		deliveries := 0
		observer := taggedObserver{tags: []string{"feed"}, count: &deliveries}

		assert.False(t, subject.AddObserver(observer))
		assert.False(t, subject.AddObserver(observer))
		assert.Equal(t, 0, subject.Len())
		assert.False(t, subject.RemoveObserver(observer))

		require.NoError(t, subject.Notify(ctx, events.NewEvent(events.MemberAdded, "alice", time.Now())))
		assert.Zero(t, deliveries)

		assert.True(t, subject.AddObserver(&observer), "a pointer to the same value is comparable")
		assert.False(t, subject.AddObserver(&observer))
		assert.True(t, subject.RemoveObserver(&observer))
	})

	t.Run("removed observer stops receiving events", func(t *testing.T) {
		subject := events.NewSubject(logger)
		var log []string
		a := &mocks.RecordingObserver{Name: "A", Log: &log}
		b := &mocks.RecordingObserver{Name: "B", Log: &log}
		subject.AddObserver(a)
		subject.AddObserver(b)

		assert.True(t, subject.RemoveObserver(a))
		assert.False(t, subject.RemoveObserver(a), "second removal reports nothing removed")

		require.NoError(t, subject.Notify(ctx, events.NewEvent(events.PostDeleted, nil, time.Now())))
		assert.Equal(t, []string{"B:postDeleted"}, log)
	})

	t.Run("failing observer stops the dispatch", func(t *testing.T) {
		subject := events.NewSubject(logger)
		cause := errors.New("handler error")

		var log []string
		first := &mocks.RecordingObserver{Name: "first", Log: &log}
		failing := &mocks.RecordingObserver{Name: "failing", Log: &log, Err: cause}
		last := &mocks.RecordingObserver{Name: "last", Log: &log}
		subject.AddObserver(first)
		subject.AddObserver(failing)
		subject.AddObserver(last)

		event := events.NewEvent(events.MemberRemoved, "bob", time.Now())
		err := subject.Notify(ctx, event)

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)

		var dispatchErr *events.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.Equal(t, 1, dispatchErr.Index)
		assert.Same(t, event, dispatchErr.Event)

		assert.Equal(t, []string{"first:memberRemoved", "failing:memberRemoved"}, log)
	})

	t.Run("observer receives the exact event", func(t *testing.T) {
		subject := events.NewSubject(logger)
		observer := &mocks.MockObserver{}
		event := events.NewEvent(events.PostCreated, "post", time.Now())
		observer.On("Update", ctx, event).Return(nil)

		subject.AddObserver(observer)
		require.NoError(t, subject.Notify(ctx, event))
		observer.AssertExpectations(t)
	})
}
