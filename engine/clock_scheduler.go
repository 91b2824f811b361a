package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starship/status"
)

// Task is one cooperatively scheduled animation
// Resume runs the task up to its next suspension point and reports whether it has finished
type Task interface {
	Resume() (done bool)
}

// TaskFunc adapts a function to Task
type TaskFunc func() bool

func (f TaskFunc) Resume() bool { return f() }

// Surface is flushed once after every pass over the tasks
type Surface interface {
	Flush()
}

// ClockScheduler resumes every live task once per tick on a fixed interval
// All tasks run on the caller's goroutine; none is ever preempted
type ClockScheduler struct {
	tasks   []Task
	surface Surface

	tickInterval time.Duration
	sleeper      Sleeper

	ticks uint64

	// Cached metric pointers
	statTicks     *atomic.Int64
	statTasks     *atomic.Int64
	statCompleted *atomic.Int64
	statTickMs    *status.AtomicFloat
}

// NewClockScheduler creates a scheduler flushing surface every tickInterval
// reg may be nil when metrics are not collected
func NewClockScheduler(surface Surface, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		surface:       surface,
		tickInterval:  tickInterval,
		sleeper:       TimerSleeper{},
		statTicks:     reg.Int("engine.ticks"),
		statTasks:     reg.Int("engine.tasks"),
		statCompleted: reg.Int("engine.completed"),
		statTickMs:    reg.Float("engine.tick_ms"),
	}
}

// SetSleeper replaces the inter-tick wait, must be called before Run
func (cs *ClockScheduler) SetSleeper(s Sleeper) {
	cs.sleeper = s
}

// Add registers tasks; registration order is resume order, so later tasks paint over earlier ones
func (cs *ClockScheduler) Add(tasks ...Task) {
	cs.tasks = append(cs.tasks, tasks...)
	cs.statTasks.Store(int64(len(cs.tasks)))
}

// Len returns the number of live tasks
func (cs *ClockScheduler) Len() int {
	return len(cs.tasks)
}

// Ticks returns the number of completed ticks
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.ticks
}

// Tick resumes each live task once, drops finished ones, then flushes the surface
// Returns the number of tasks still live
func (cs *ClockScheduler) Tick() int {
	start := time.Now()

	// Iterate a stable snapshot; removal happens into a fresh slice
	snapshot := cs.tasks
	live := make([]Task, 0, len(snapshot))
	completed := 0
	for _, t := range snapshot {
		if t.Resume() {
			completed++
			continue
		}
		live = append(live, t)
	}
	cs.tasks = live

	if cs.surface != nil {
		cs.surface.Flush()
	}

	cs.ticks++
	cs.statTicks.Add(1)
	cs.statTasks.Store(int64(len(live)))
	if completed > 0 {
		cs.statCompleted.Add(int64(completed))
		log.Printf("engine: %d task(s) completed at tick %d, %d live", completed, cs.ticks, len(live))
	}
	cs.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)

	return len(live)
}

// Run ticks until ctx is cancelled, sleeping tickInterval after each flush
// Returns ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	log.Printf("engine: scheduler started, %d tasks, interval %v", len(cs.tasks), cs.tickInterval)
	defer func() {
		log.Printf("engine: scheduler stopped after %d ticks", cs.ticks)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cs.Tick()
		if err := cs.sleeper.Sleep(ctx, cs.tickInterval); err != nil {
			return err
		}
	}
}
