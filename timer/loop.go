package timer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/on-the-ground/underbar_go/shared/orderedbuffer"
	"go.uber.org/zap"
)

var _ Scheduler = (*Loop)(nil)

var ErrLoopClosed = errors.New("timer loop is closed")

// idleWait is how long the loop sleeps when nothing is pending.
// Any Schedule call wakes it earlier.
const idleWait = time.Hour

// Loop is a wall-clock Scheduler backed by a single dispatcher goroutine.
// Callbacks run one at a time on that goroutine, so they never race each other.
type Loop struct {
	ctx     context.Context
	logger  *zap.Logger
	metrics loopMetrics

	mu      sync.Mutex
	pending *orderedbuffer.OrderedBuffer[Task]
	wake    chan struct{}
	done    chan struct{}
	closed  atomic.Bool
}

// Start launches a Loop bound to ctx.
// The returned teardown stops the loop and waits for the dispatcher to exit;
// tasks still pending at that point never run.
func Start(ctx context.Context, cfg Config) (*Loop, func()) {
	cfg = cfg.normalized()
	ctx, cancel := context.WithCancel(ctx)

	l := &Loop{
		ctx:     ctx,
		logger:  cfg.Logger,
		metrics: newLoopMetrics(cfg.Meter, cfg.Logger),
		pending: orderedbuffer.NewOrderedBuffer(cfg.BufferSize, compareDue),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	ready := make(chan struct{})
	go func() {
		close(ready)
		l.run(ctx)
	}()
	<-ready
	l.logger.Debug("started timer loop", zap.Int("bufferSize", cfg.BufferSize))

	return l, func() {
		if !l.closed.CompareAndSwap(false, true) {
			return
		}
		cancel()
		<-l.done
		l.mu.Lock()
		dropped := l.pending.Len()
		l.mu.Unlock()
		l.logger.Debug("closed timer loop", zap.Int("dropped", dropped))
	}
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

// Schedule never blocks, including when called from a callback running on the loop.
func (l *Loop) Schedule(wait time.Duration, fn func()) TaskID {
	task := newTask(time.Now(), wait, fn)
	if l.closed.Load() || l.ctx.Err() != nil {
		l.logger.Warn("dropping task",
			zap.String("taskId", string(task.ID)),
			zap.Error(ErrLoopClosed),
		)
		return task.ID
	}

	l.mu.Lock()
	l.pending.Insert(task)
	l.mu.Unlock()
	l.metrics.scheduled.Add(l.ctx, 1)

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return task.ID
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	t := time.NewTimer(idleWait)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		case <-t.C:
		}

		for _, task := range l.popDue(time.Now()) {
			if ctx.Err() != nil {
				return
			}
			l.fire(ctx, task)
		}
		t.Reset(l.untilNext())
	}
}

func (l *Loop) popDue(now time.Time) []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending.PopWhile(func(task Task) bool {
		return !task.Due().After(now)
	})
}

func (l *Loop) untilNext() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	head, ok := l.pending.Peek()
	if !ok {
		return idleWait
	}
	return max(time.Until(head.Due()), 0)
}

func (l *Loop) fire(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			l.metrics.panics.Add(ctx, 1)
			l.logger.Error("recovered panic in scheduled task",
				zap.String("taskId", string(task.ID)),
				zap.Any("recovered", r),
			)
		}
	}()

	l.metrics.fired.Add(ctx, 1)
	l.logger.Debug("firing task",
		zap.String("taskId", string(task.ID)),
		zap.Duration("wait", task.Span.Duration()),
		zap.Duration("late", time.Since(task.Due())),
	)
	task.fn()
}
