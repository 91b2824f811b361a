package task

import (
	"github.com/lixenwraith/starship/constants"
	"github.com/lixenwraith/starship/render"
)

// Blink is a star cycling dim, normal, bold, normal forever
// The normal hold after dim is stretched by a per-star offset fixed at construction
type Blink struct {
	canvas render.Canvas
	row    int
	col    int
	symbol rune

	// Phase boundaries in ticks, relative to cycle start
	normalAt int
	boldAt   int
	fadeAt   int
	period   int

	step int
}

// NewBlink creates a star at (row, col); offset is the extra normal hold in ticks
func NewBlink(c render.Canvas, row, col int, symbol rune, offset int) *Blink {
	if offset < 0 {
		offset = 0
	}
	normalAt := constants.BlinkDimTicks
	boldAt := normalAt + offset + constants.BlinkNormalTicks
	fadeAt := boldAt + constants.BlinkBoldTicks
	return &Blink{
		canvas:   c,
		row:      row,
		col:      col,
		symbol:   symbol,
		normalAt: normalAt,
		boldAt:   boldAt,
		fadeAt:   fadeAt,
		period:   fadeAt + constants.BlinkFadeTicks,
	}
}

// Resume paints on phase changes only; never finishes
func (b *Blink) Resume() bool {
	switch b.step {
	case 0:
		b.canvas.Set(b.row, b.col, b.symbol, render.AttrDim)
	case b.normalAt, b.fadeAt:
		b.canvas.Set(b.row, b.col, b.symbol, render.AttrNormal)
	case b.boldAt:
		b.canvas.Set(b.row, b.col, b.symbol, render.AttrBold)
	}

	b.step++
	if b.step == b.period {
		b.step = 0
	}
	return false
}

// Position returns the star's cell
func (b *Blink) Position() (row, col int) {
	return b.row, b.col
}

// Period returns the cycle length in ticks
func (b *Blink) Period() int {
	return b.period
}
