package task

import (
	"math"

	"github.com/lixenwraith/starship/constants"
	"github.com/lixenwraith/starship/render"
)

type firePhase uint8

const (
	phaseSpark firePhase = iota
	phaseFlash
	phaseLaunch
	phaseFlight
	phaseDone
)

// Fire is a projectile: a muzzle spark, a flash, then a glyph travelling until it leaves the interior
type Fire struct {
	canvas render.Canvas
	alert  Alerter

	row, col           float64
	rowSpeed, colSpeed float64

	symbol rune
	phase  firePhase
}

// NewFire creates a shot at (row, col) travelling at the default speed
func NewFire(c render.Canvas, row, col float64, alert Alerter) *Fire {
	return &Fire{
		canvas:   c,
		alert:    alert,
		row:      row,
		col:      col,
		rowSpeed: constants.FireRowSpeed,
		colSpeed: constants.FireColSpeed,
	}
}

// WithSpeed overrides the per-tick velocity
func (f *Fire) WithSpeed(rowSpeed, colSpeed float64) *Fire {
	f.rowSpeed = rowSpeed
	f.colSpeed = colSpeed
	return f
}

// Resume advances the shot; returns true once it has left the interior
func (f *Fire) Resume() bool {
	switch f.phase {
	case phaseSpark:
		f.canvas.Set(f.cellRow(), f.cellCol(), constants.FireSparkSymbol, render.AttrNormal)
		f.phase = phaseFlash
		return false

	case phaseFlash:
		f.canvas.Set(f.cellRow(), f.cellCol(), constants.FireFlashSymbol, render.AttrNormal)
		f.phase = phaseLaunch
		return false

	case phaseLaunch:
		f.canvas.Clear(f.cellRow(), f.cellCol())
		f.advance()
		f.symbol = constants.FireVertSymbol
		if f.colSpeed != 0 {
			f.symbol = constants.FireHorizSymbol
		}
		if f.alert != nil {
			f.alert.Alert()
		}
		f.phase = phaseFlight
		return f.paintOrFinish()

	case phaseFlight:
		f.canvas.Clear(f.cellRow(), f.cellCol())
		f.advance()
		return f.paintOrFinish()
	}
	return true
}

func (f *Fire) paintOrFinish() bool {
	if !f.inside() {
		f.phase = phaseDone
		return true
	}
	f.canvas.Set(f.cellRow(), f.cellCol(), f.symbol, render.AttrNormal)
	return false
}

func (f *Fire) advance() {
	f.row += f.rowSpeed
	f.col += f.colSpeed
}

// inside reports whether the position is strictly within the border on every side
func (f *Fire) inside() bool {
	rows, cols := f.canvas.Size()
	maxRow, maxCol := float64(rows-1), float64(cols-1)
	return 0 < f.row && f.row < maxRow && 0 < f.col && f.col < maxCol
}

func (f *Fire) cellRow() int { return int(math.Round(f.row)) }
func (f *Fire) cellCol() int { return int(math.Round(f.col)) }

// Position returns the exact, unrounded position
func (f *Fire) Position() (row, col float64) {
	return f.row, f.col
}

// Done reports whether the shot has finished
func (f *Fire) Done() bool {
	return f.phase == phaseDone
}
