package task

import (
	"github.com/lixenwraith/starship/constants"
	"github.com/lixenwraith/starship/render"
)

// NewStarfield creates n stars at random cells with random symbol and hold offset
// All randomness is drawn here; the stars themselves are deterministic
func NewStarfield(c render.Canvas, rng Rand, n int) []*Blink {
	rows, cols := c.Size()
	if rows <= 0 || cols <= 0 || n <= 0 {
		return nil
	}

	symbols := []rune(constants.StarSymbols)
	stars := make([]*Blink, 0, n)
	for i := 0; i < n; i++ {
		row := rng.IntN(rows)
		col := rng.IntN(cols)
		symbol := symbols[rng.IntN(len(symbols))]
		offset := rng.IntN(constants.BlinkMaxOffset + 1)
		stars = append(stars, NewBlink(c, row, col, symbol, offset))
	}
	return stars
}
