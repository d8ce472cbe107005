package purefn

import (
	"slices"
	"sync"
	"time"

	"github.com/on-the-ground/underbar_go/timer"
)

// Delay runs fn(args...) once on s after at least wait, and returns at once.
// args are copied at call time.
func Delay[A any](s timer.Scheduler, fn func(args ...A), wait time.Duration, args ...A) {
	captured := slices.Clone(args)
	s.Schedule(wait, func() {
		fn(captured...)
	})
}

// Throttle returns a function that runs fn at most once per wait window.
//
// A call outside a window runs fn immediately and opens a window that s
// closes wait later. Calls while the window is open are dropped, not queued,
// and do not extend it. A window also counts as closed once s.Now() reaches
// its end, so a scheduler that drops the closing task (a torn-down
// timer.Loop) does not suppress fn forever.
func Throttle[A any](s timer.Scheduler, fn func(args ...A), wait time.Duration) func(args ...A) {
	// the closing task may run on another goroutine (timer.Loop)
	var (
		mu       sync.Mutex
		open     bool
		openedAt time.Time
		window   uint64
	)
	tryOpen := func() (uint64, bool) {
		mu.Lock()
		defer mu.Unlock()
		now := s.Now()
		if open && now.Before(openedAt.Add(wait)) {
			return 0, false
		}
		window++
		open, openedAt = true, now
		return window, true
	}

	return func(args ...A) {
		id, ok := tryOpen()
		if !ok {
			return
		}
		s.Schedule(wait, func() {
			mu.Lock()
			defer mu.Unlock()
			if window == id {
				open = false
			}
		})
		fn(args...)
	}
}
