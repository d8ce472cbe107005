package timer

import (
	"time"

	"github.com/on-the-ground/underbar_go/shared/orderedbuffer"
)

var _ Scheduler = (*Virtual)(nil)

// Epoch is where a Virtual clock starts unless told otherwise.
var Epoch = time.Unix(0, 0).UTC()

// Virtual is a logical-time Scheduler. Time only moves when Advance or
// RunPending is called, which makes deferred behavior deterministic.
//
// IMPORTANT: Virtual is not safe for concurrent use. Callbacks run on the
// goroutine calling Advance, and a panicking callback propagates to it.
type Virtual struct {
	now     time.Time
	pending *orderedbuffer.OrderedBuffer[Task]
}

func NewVirtual() *Virtual {
	return NewVirtualAt(Epoch)
}

func NewVirtualAt(start time.Time) *Virtual {
	return &Virtual{
		now:     start,
		pending: orderedbuffer.NewOrderedBuffer(8, compareDue),
	}
}

func (v *Virtual) Now() time.Time {
	return v.now
}

func (v *Virtual) Schedule(wait time.Duration, fn func()) TaskID {
	task := newTask(v.now, wait, fn)
	v.pending.Insert(task)
	return task.ID
}

// Advance moves the clock forward by d, running every task due on the way.
// The clock reads each task's deadline while that task runs, so callbacks
// that schedule more work see a consistent Now. Returns the number of tasks run.
func (v *Virtual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := v.now.Add(d)
	fired := 0
	for {
		head, ok := v.pending.Peek()
		if !ok || head.Due().After(target) {
			break
		}
		v.pending.Pop()
		v.runAt(head)
		fired++
	}
	v.now = target
	return fired
}

// RunPending runs tasks until none are left, however far that moves the clock.
func (v *Virtual) RunPending() int {
	fired := 0
	for {
		head, ok := v.pending.Pop()
		if !ok {
			return fired
		}
		v.runAt(head)
		fired++
	}
}

func (v *Virtual) Pending() int {
	return v.pending.Len()
}

func (v *Virtual) runAt(task Task) {
	if due := task.Due(); due.After(v.now) {
		v.now = due
	}
	task.fn()
}
