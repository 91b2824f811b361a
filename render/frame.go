package render

import "math"

// Frame is a multi-line text sprite, one rune slice per row
type Frame interface {
	Rows() [][]rune
}

// DrawFrame paints frame with its top-left corner at (startRow, startCol), rounded to the nearest cell
// Spaces are transparent and never written, so erase=true with the same arguments exactly undoes a draw
// Rows above the grid are skipped; the first row below it ends drawing
// Columns left of the grid are skipped; the first column past the right edge ends the row
func DrawFrame(c Canvas, startRow, startCol float64, frame Frame, erase bool) {
	rows, cols := c.Size()
	top := int(math.Round(startRow))
	left := int(math.Round(startCol))

	for i, line := range frame.Rows() {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= rows {
			break
		}

		for j, symbol := range line {
			col := left + j
			if col < 0 {
				continue
			}
			if col >= cols {
				break
			}
			if symbol == ' ' {
				continue
			}
			// Terminals may scroll when the last cell is addressed
			if row == rows-1 && col == cols-1 {
				continue
			}

			if erase {
				c.Clear(row, col)
			} else {
				c.Set(row, col, symbol, AttrNormal)
			}
		}
	}
}
