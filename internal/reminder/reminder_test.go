package reminder

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/fitcircle/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 20, 7, 0, 0, 0, time.UTC)

func newTestStore() (*Store, *clock.Fixed) {
	c := clock.NewFixed(now)
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(WithClock(c), WithLogger(l)), c
}

func TestSharedReturnsSameInstance(t *testing.T) {
	first := Shared()
	second := Shared()
	require.Same(t, first, second)

	before := len(second.Reminders())
	first.AddReminder("Hydrate", now, "Drink a glass of water")
	assert.Len(t, second.Reminders(), before+1, "additions are visible through every reference")
}

func TestAddReminder(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()

	r := s.AddReminder("Today's Training", now.Add(time.Hour), "Remember to do 30-minute aerobic exercise")
	assert.False(t, r.Triggered)
	assert.Equal(t, "Today's Training", r.Title)

	s.AddReminder("Today's Training", now.Add(time.Hour), "Remember to do 30-minute aerobic exercise")
	assert.Len(t, s.Reminders(), 2, "duplicates are accepted")
}

func TestTriggerReminders(t *testing.T) {
	t.Parallel()

	t.Run("past reminder fires exactly once", func(t *testing.T) {
		s, _ := newTestStore()
		s.AddReminder("Breakfast", now.Add(-time.Minute), "Log your breakfast")

		assert.Equal(t, []string{"Reminder: Breakfast - Log your breakfast"}, s.TriggerReminders())
		assert.Empty(t, s.TriggerReminders())
		assert.True(t, s.Reminders()[0].Triggered)
	})

	t.Run("reminder at exactly now fires", func(t *testing.T) {
		s, _ := newTestStore()
		s.AddReminder("Stretch", now, "Five minutes of mobility")
		assert.Len(t, s.TriggerReminders(), 1)
	})

	t.Run("future reminder waits for the clock", func(t *testing.T) {
		s, c := newTestStore()
		s.AddReminder("Evening run", now.Add(2*time.Hour), "5k easy pace")

		assert.Empty(t, s.TriggerReminders())
		assert.False(t, s.Reminders()[0].Triggered)

		c.Advance(2 * time.Hour)
		assert.Equal(t, []string{"Reminder: Evening run - 5k easy pace"}, s.TriggerReminders())
	})

	t.Run("only due reminders fire, in storage order", func(t *testing.T) {
		s, _ := newTestStore()
		s.AddReminder("B", now.Add(-time.Hour), "second added, earlier time")
		s.AddReminder("Later", now.Add(time.Hour), "not yet")
		s.AddReminder("A", now.Add(-time.Minute), "third added")

		assert.Equal(t, []string{
			"Reminder: B - second added, earlier time",
			"Reminder: A - third added",
		}, s.TriggerReminders())
	})

	t.Run("empty store", func(t *testing.T) {
		s, _ := newTestStore()
		msgs := s.TriggerReminders()
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("concurrent triggers fire each reminder once", func(t *testing.T) {
		s, _ := newTestStore()
		for i := 0; i < 50; i++ {
			s.AddReminder("Set", now, "go")
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			total int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n := len(s.TriggerReminders())
				mu.Lock()
				total += n
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, total)
	})
}

func TestReminderInfo(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	s.AddReminder("Weigh-in", now.Add(-time.Hour), "Before breakfast")
	s.AddReminder("Meal prep", now.Add(time.Hour), "Cook chicken and rice")
	s.TriggerReminders()

	assert.Equal(t, []string{
		"Title: Weigh-in, Time: 2025/2/20 06:00:00, Description: Before breakfast, Triggered: true",
		"Title: Meal prep, Time: 2025/2/20 08:00:00, Description: Cook chicken and rice, Triggered: false",
	}, s.ReminderInfo())

	custom := NewStore(WithTimeLayout(time.RFC3339))
	custom.AddReminder("x", now, "y")
	assert.Equal(t, []string{"Title: x, Time: 2025-02-20T07:00:00Z, Description: y, Triggered: false"}, custom.ReminderInfo())
}
