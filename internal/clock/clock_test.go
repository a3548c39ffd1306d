package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)
	c := NewFixed(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	later := start.AddDate(0, 1, 0)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestOrReal(t *testing.T) {
	t.Parallel()

	assert.IsType(t, Real{}, OrReal(nil))

	fixed := NewFixed(time.Unix(0, 0))
	assert.Same(t, fixed, OrReal(fixed))

	before := time.Now()
	assert.False(t, Real{}.Now().Before(before))
}
