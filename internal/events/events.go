package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type names the kind of change an Event reports.
type Type string

// Event types emitted by the community feed.
const (
	MemberAdded   Type = "memberAdded"
	MemberRemoved Type = "memberRemoved"
	PostCreated   Type = "postCreated"
	PostDeleted   Type = "postDeleted"
)

// Event is a single notification delivered to observers.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what happened
	Type Type `json:"type"`

	// Data is the subject of the change, e.g. the *domain.User that joined
	// or the *community.Post that was created.
	Data interface{} `json:"data"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType Type, data interface{}, now time.Time) *Event {
	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Data:      data,
		CreatedAt: now,
	}
}

// Observer receives events from a Subject.
type Observer interface {
	// Update handles the event. A non-nil error aborts the remaining dispatch.
	Update(ctx context.Context, event *Event) error
}

// DispatchError reports which observer failed during a dispatch.
type DispatchError struct {
	Event *Event
	// Index is the failing observer's position in subscription order.
	Index int
	Err   error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("observer %d failed to handle %s event: %v", e.Index, e.Event.Type, e.Err)
}

// Unwrap returns the observer's error to support errors.Is/errors.As.
func (e *DispatchError) Unwrap() error {
	return e.Err
}
