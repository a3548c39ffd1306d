package events

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/phrazzld/fitcircle/internal/platform/logger"
)

// Subject keeps an ordered set of observers and dispatches events to them.
// Observers are compared with ==, so their dynamic type must be comparable.
type Subject struct {
	observers []Observer
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewSubject creates a new Subject with no observers.
func NewSubject(l *slog.Logger) *Subject {
	return &Subject{
		observers: make([]Observer, 0),
		logger:    logger.OrDefault(l).With("component", "event_subject"),
	}
}

// AddObserver subscribes o. Adding an observer that is already subscribed
// is a no-op and returns false. Observers of a non-comparable type (such as
// a struct holding a slice, used by value) are rejected because they could
// never be matched again for de-duplication or removal.
func (s *Subject) AddObserver(o Observer) bool {
	if o == nil {
		return false
	}
	if !reflect.TypeOf(o).Comparable() {
		s.logger.Warn("observer rejected, type is not comparable",
			"observer_type", reflect.TypeOf(o).String())
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(o) != -1 {
		return false
	}
	s.observers = append(s.observers, o)
	s.logger.Debug("registered observer", "observer_count", len(s.observers))
	return true
}

// RemoveObserver unsubscribes o and reports whether it was subscribed.
func (s *Subject) RemoveObserver(o Observer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(o)
	if i == -1 {
		return false
	}
	s.observers = append(s.observers[:i], s.observers[i+1:]...)
	s.logger.Debug("removed observer", "observer_count", len(s.observers))
	return true
}

// Len returns the number of subscribed observers.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Notify delivers event to every observer in subscription order and returns
// once all of them have run. The first observer error stops the dispatch;
// later observers do not see the event.
func (s *Subject) Notify(ctx context.Context, event *Event) error {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	s.logger.Debug("dispatching event",
		"event_id", event.ID,
		"event_type", event.Type,
		"observer_count", len(observers))

	for i, o := range observers {
		if err := o.Update(ctx, event); err != nil {
			s.logger.Error("observer failed to handle event",
				"error", err,
				"observer_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			return &DispatchError{Event: event, Index: i, Err: err}
		}
	}

	return nil
}

// indexOf must be called with s.mu held.
func (s *Subject) indexOf(o Observer) int {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return -1
	}
	for i, existing := range s.observers {
		if reflect.TypeOf(existing).Comparable() && existing == o {
			return i
		}
	}
	return -1
}
