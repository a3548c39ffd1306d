// Package reminder holds one-shot timed reminders such as "today's training"
// or "log your lunch".
//
// A Store is normally constructed once at startup and handed to every
// component that needs it. Shared returns a lazily created process-wide
// Store for callers that cannot be given one explicitly.
package reminder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/fitcircle/internal/clock"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
)

// DefaultTimeLayout formats reminder times in Info.
const DefaultTimeLayout = "2006/1/2 15:04:05"

// Reminder is a single scheduled notification. Once Triggered it never
// fires again.
type Reminder struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	RemindTime  time.Time `json:"remind_time"`
	Description string    `json:"description"`
	Triggered   bool      `json:"is_triggered"`
}

// Message is the text delivered when the reminder fires.
func (r Reminder) Message() string {
	return fmt.Sprintf("Reminder: %s - %s", r.Title, r.Description)
}

// Info describes the reminder on one line.
func (r Reminder) Info(layout string) string {
	return fmt.Sprintf("Title: %s, Time: %s, Description: %s, Triggered: %t",
		r.Title, r.RemindTime.Format(layout), r.Description, r.Triggered)
}

// Store keeps reminders in the order they were added. All methods are safe
// for concurrent use; each TriggerReminders call reads the clock once and
// marks reminders under the same lock.
type Store struct {
	mu         sync.Mutex
	reminders  []*Reminder
	clock      clock.Clock
	timeLayout string
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to decide which reminders are due.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = clock.OrReal(c)
	}
}

// WithTimeLayout sets the layout used by ReminderInfo.
func WithTimeLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.timeLayout = layout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.OrDefault(l)
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		reminders:  make([]*Reminder, 0),
		clock:      clock.Real{},
		timeLayout: DefaultTimeLayout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "reminder_store")
	return s
}

var (
	shared     *Store
	sharedOnce sync.Once
)

// Shared returns the process-wide Store, creating it with default options on
// first use. Every call returns the same instance.
func Shared() *Store {
	sharedOnce.Do(func() {
		shared = NewStore()
	})
	return shared
}

// AddReminder schedules a reminder. Past times and duplicates are accepted.
func (s *Store) AddReminder(title string, remindTime time.Time, description string) Reminder {
	r := &Reminder{
		ID:          uuid.New(),
		Title:       title,
		RemindTime:  remindTime,
		Description: description,
	}

	s.mu.Lock()
	s.reminders = append(s.reminders, r)
	count := len(s.reminders)
	s.mu.Unlock()

	s.logger.Debug("reminder added",
		"reminder_id", r.ID,
		"title", title,
		"remind_time", remindTime,
		"reminder_count", count)

	return *r
}

// TriggerReminders fires every untriggered reminder whose time is at or
// before now and returns their messages in storage order. Fired reminders
// are skipped by later calls.
func (s *Store) TriggerReminders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	messages := make([]string, 0)
	for _, r := range s.reminders {
		if r.Triggered || r.RemindTime.After(now) {
			continue
		}
		r.Triggered = true
		messages = append(messages, r.Message())
		s.logger.Info("reminder triggered", "reminder_id", r.ID, "title", r.Title)
	}

	return messages
}

// ReminderInfo returns one line per reminder, triggered or not, in storage order.
func (s *Store) ReminderInfo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, len(s.reminders))
	for i, r := range s.reminders {
		lines[i] = r.Info(s.timeLayout)
	}
	return lines
}

// Reminders returns a snapshot of all reminders in storage order.
func (s *Store) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reminder, len(s.reminders))
	for i, r := range s.reminders {
		out[i] = *r
	}
	return out
}
