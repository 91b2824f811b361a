package task

import (
	"github.com/lixenwraith/starship/asset"
	"github.com/lixenwraith/starship/constants"
	"github.com/lixenwraith/starship/render"
)

// frameCycle shows each of the two frames for two ticks
var frameCycle = [4]int{0, 0, 1, 1}

// Spaceship is the player sprite, moved one cell per axis per tick by Controls
type Spaceship struct {
	canvas   render.Canvas
	controls Controls
	frames   [2]*asset.Sprite

	row int
	col int

	// Bounding box across both frames
	height int
	width  int

	step int

	// Frame left on the canvas by the previous resume
	drawn    *asset.Sprite
	drawnRow int
	drawnCol int
}

// NewSpaceship creates the ship with its top-left corner at (row, col)
func NewSpaceship(c render.Canvas, controls Controls, row, col int, frame1, frame2 *asset.Sprite) *Spaceship {
	h1, w1 := frame1.Size()
	h2, w2 := frame2.Size()
	return &Spaceship{
		canvas:   c,
		controls: controls,
		frames:   [2]*asset.Sprite{frame1, frame2},
		row:      row,
		col:      col,
		height:   max(h1, h2),
		width:    max(w1, w2),
	}
}

// Resume erases the previous frame, applies input, draws the next frame; never finishes
func (s *Spaceship) Resume() bool {
	if s.drawn != nil {
		render.DrawFrame(s.canvas, float64(s.drawnRow), float64(s.drawnCol), s.drawn, true)
		s.drawn = nil
	}

	if s.controls != nil {
		snap := s.controls.Sample()
		s.move(snap.RowDelta, snap.ColDelta)
	}

	frame := s.frames[frameCycle[s.step]]
	render.DrawFrame(s.canvas, float64(s.row), float64(s.col), frame, false)
	s.drawn, s.drawnRow, s.drawnCol = frame, s.row, s.col

	s.step = (s.step + 1) % len(frameCycle)
	return false
}

// move applies each axis independently; an axis whose move would leave the interior is dropped
func (s *Spaceship) move(dRow, dCol int) {
	rows, cols := s.canvas.Size()
	if r := s.row + clampUnit(dRow); s.fits(r, s.height, rows) {
		s.row = r
	}
	if c := s.col + clampUnit(dCol); s.fits(c, s.width, cols) {
		s.col = c
	}
}

// fits reports whether [start, start+size) stays inside the border on an axis of length limit
func (s *Spaceship) fits(start, size, limit int) bool {
	return start >= constants.ShipBorder && start+size <= limit-constants.ShipBorder
}

// Position returns the ship's top-left corner
func (s *Spaceship) Position() (row, col int) {
	return s.row, s.col
}

// Size returns the ship's bounding box
func (s *Spaceship) Size() (height, width int) {
	return s.height, s.width
}

func clampUnit(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
