package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/starship/status"
)

// traceSurface records flushes into a shared trace
type traceSurface struct {
	trace *[]string
}

func (s traceSurface) Flush() { *s.trace = append(*s.trace, "flush") }

// countdownTask finishes on its n-th resume
func countdownTask(name string, n int, trace *[]string) Task {
	resumes := 0
	return TaskFunc(func() bool {
		resumes++
		*trace = append(*trace, fmt.Sprintf("%s%d", name, resumes))
		return resumes >= n
	})
}

func TestTickResumesInRegistrationOrderThenFlushes(t *testing.T) {
	var trace []string
	cs := NewClockScheduler(traceSurface{&trace}, time.Millisecond, nil)
	cs.Add(countdownTask("a", 100, &trace), countdownTask("b", 100, &trace))
	cs.Add(countdownTask("c", 100, &trace))

	cs.Tick()
	cs.Tick()

	want := "a1 b1 c1 flush a2 b2 c2 flush"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestTickRemovesCompletedTasks(t *testing.T) {
	var trace []string
	cs := NewClockScheduler(traceSurface{&trace}, time.Millisecond, nil)
	cs.Add(
		countdownTask("a", 1, &trace),
		countdownTask("b", 100, &trace),
		countdownTask("c", 2, &trace),
	)

	if live := cs.Tick(); live != 2 {
		t.Fatalf("live after tick 1 = %d, want 2", live)
	}
	if live := cs.Tick(); live != 1 {
		t.Fatalf("live after tick 2 = %d, want 1", live)
	}
	cs.Tick()

	want := "a1 b1 c1 flush b2 c2 flush b3 flush"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
	if cs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cs.Len())
	}
}

func TestTickCompletionDoesNotSkipLaterTasks(t *testing.T) {
	var trace []string
	cs := NewClockScheduler(nil, time.Millisecond, nil)

	// Every task finishes immediately; all must still run in the same pass
	for _, name := range []string{"a", "b", "c", "d"} {
		cs.Add(countdownTask(name, 1, &trace))
	}
	cs.Tick()
	cs.Tick()

	if got := strings.Join(trace, " "); got != "a1 b1 c1 d1" {
		t.Errorf("trace = %q", got)
	}
	if cs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cs.Len())
	}
}

func TestTickWithNoTasksStillFlushes(t *testing.T) {
	var trace []string
	cs := NewClockScheduler(traceSurface{&trace}, time.Millisecond, nil)
	cs.Tick()
	cs.Tick()
	if len(trace) != 2 {
		t.Errorf("flushes = %d, want 2", len(trace))
	}
}

func TestRunSleepsFixedIntervalUntilCancelled(t *testing.T) {
	var trace []string
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sleeper := &MockSleeper{Limit: 5, Cancel: cancel}
	cs := NewClockScheduler(traceSurface{&trace}, 100*time.Millisecond, nil)
	cs.SetSleeper(sleeper)
	cs.Add(countdownTask("a", 1000, &trace))

	err := cs.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	if cs.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", cs.Ticks())
	}
	for i, d := range sleeper.Sleeps() {
		if d != 100*time.Millisecond {
			t.Errorf("sleep %d = %v", i, d)
		}
	}
	// Every tick flushed exactly once, after its task
	if got := strings.Count(strings.Join(trace, " "), "flush"); got != 5 {
		t.Errorf("flushes = %d, want 5", got)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cs := NewClockScheduler(nil, time.Millisecond, nil)
	cs.SetSleeper(&MockSleeper{})
	if err := cs.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v", err)
	}
	if cs.Ticks() != 0 {
		t.Errorf("Ticks() = %d, want 0", cs.Ticks())
	}
}

func TestRunKeepsTickingWithoutTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var trace []string
	cs := NewClockScheduler(nil, time.Millisecond, nil)
	cs.SetSleeper(&MockSleeper{Limit: 3, Cancel: cancel})
	cs.Add(countdownTask("a", 1, &trace))

	cs.Run(ctx)

	if cs.Ticks() != 3 || len(trace) != 1 {
		t.Errorf("ticks = %d, resumes = %d", cs.Ticks(), len(trace))
	}
}

func TestSchedulerMetrics(t *testing.T) {
	reg := status.NewRegistry()
	var trace []string
	cs := NewClockScheduler(nil, time.Millisecond, reg)
	cs.Add(countdownTask("a", 1, &trace), countdownTask("b", 10, &trace))

	if got := reg.Int("engine.tasks").Load(); got != 2 {
		t.Errorf("engine.tasks after Add = %d", got)
	}
	cs.Tick()
	cs.Tick()

	if got := reg.Int("engine.ticks").Load(); got != 2 {
		t.Errorf("engine.ticks = %d", got)
	}
	if got := reg.Int("engine.tasks").Load(); got != 1 {
		t.Errorf("engine.tasks = %d", got)
	}
	if got := reg.Int("engine.completed").Load(); got != 1 {
		t.Errorf("engine.completed = %d", got)
	}
}

func TestTimerSleeper(t *testing.T) {
	if err := (TimerSleeper{}).Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Sleep() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := (TimerSleeper{}).Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep() = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled sleep did not return promptly")
	}
}
