package timer

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Scheduler runs callbacks after a wait measured on its own clock.
//
// Callbacks never run inside Schedule; they run later, on whatever drives the
// scheduler (Virtual.Advance, or the Loop goroutine). Tasks sharing a deadline
// run in the order they were scheduled.
type Scheduler interface {
	Now() time.Time
	Schedule(wait time.Duration, fn func()) TaskID
}

type TaskID string

// Task is a pending callback. Span runs from the moment it was scheduled to
// its deadline.
type Task struct {
	ID   TaskID
	Span timespan.TimeSpan
	fn   func()
}

func (t Task) Due() time.Time {
	return t.Span.End()
}

func newTask(now time.Time, wait time.Duration, fn func()) Task {
	if wait < 0 {
		wait = 0
	}
	return Task{
		ID:   TaskID(uuid.New().String()),
		Span: timespan.BetweenTimes(now, now.Add(wait)),
		fn:   fn,
	}
}

func compareDue(a, b Task) int {
	return a.Due().Compare(b.Due())
}
