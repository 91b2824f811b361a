package engine_test

import (
	"testing"
	"time"

	"github.com/lixenwraith/starship/engine"
	"github.com/lixenwraith/starship/render"
	"github.com/lixenwraith/starship/task"
)

// capture records one cell of the grid at every flush
type capture struct {
	buf      *render.Buffer
	row, col int
	seen     []render.Cell
}

func (c *capture) Flush() {
	cell, _ := c.buf.Cell(c.row, c.col)
	c.seen = append(c.seen, cell)
}

func TestSingleBlinkUnderScheduler(t *testing.T) {
	buf := render.NewBuffer(5, 5, nil)
	rec := &capture{buf: buf, row: 1, col: 2}
	cs := engine.NewClockScheduler(rec, 100*time.Millisecond, nil)
	cs.Add(task.NewBlink(buf, 1, 2, '+', 0))

	for i := 0; i < 24; i++ {
		cs.Tick()
	}

	d, n, b := render.AttrDim, render.AttrNormal, render.AttrBold
	cycle := []render.Attr{d, n, n, n, b, b, b, b, b, n, n, n}
	for i, cell := range rec.seen {
		if cell.Rune != '+' || cell.Attrs != cycle[i%len(cycle)] {
			t.Fatalf("tick %d: cell = %+v, want attrs %v", i+1, cell, cycle[i%len(cycle)])
		}
	}
	if cs.Len() != 1 {
		t.Errorf("Len() = %d, blink must never finish", cs.Len())
	}
}

func TestLaterTasksPaintOver(t *testing.T) {
	buf := render.NewBuffer(5, 5, nil)
	cs := engine.NewClockScheduler(buf, time.Millisecond, nil)
	cs.Add(
		task.NewBlink(buf, 2, 2, '.', 0),
		task.NewBlink(buf, 2, 2, '*', 0),
	)

	cs.Tick()
	if cell, _ := buf.Cell(2, 2); cell.Rune != '*' {
		t.Errorf("cell = %q, want later task's glyph", cell.Rune)
	}
}

func TestProjectileRemovedAfterCompletion(t *testing.T) {
	buf := render.NewBuffer(20, 20, nil)
	cs := engine.NewClockScheduler(buf, time.Millisecond, nil)
	cs.Add(task.NewFire(buf, 10, 10, nil), task.NewBlink(buf, 0, 0, '+', 3))

	ticks := 0
	for cs.Len() == 2 {
		cs.Tick()
		ticks++
		if ticks > 100 {
			t.Fatal("projectile never completed")
		}
	}
	// Spark, flash, 33 flight ticks, then the step that leaves the interior
	if ticks != 36 {
		t.Errorf("completed on tick %d, want 36", ticks)
	}
	for i := 0; i < 10; i++ {
		cs.Tick()
	}
	if cs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cs.Len())
	}
}
