package render

// Canvas is the mutable character grid tasks paint on
// Set and Clear silently drop writes outside the grid and at the reserved bottom-right cell
type Canvas interface {
	Size() (rows, cols int)
	Set(row, col int, r rune, attr Attr)
	Clear(row, col int)
}

// Output receives the finished grid once per tick
// Matches terminal.Terminal.Flush so a Terminal can be passed directly
type Output interface {
	Flush(cells []Cell, width, height int)
}

// Buffer is the shared surface backed by a row-major Cell array
// Dimensions are fixed for the session
type Buffer struct {
	cells []Cell
	rows  int
	cols  int
	out   Output
}

// NewBuffer creates a blank buffer; out may be nil when nothing is displayed
func NewBuffer(rows, cols int, out Output) *Buffer {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Buffer{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
		out:   out,
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.rows, b.cols
}

// writable returns true if in bounds and not the reserved corner
func (b *Buffer) writable(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return !(row == b.rows-1 && col == b.cols-1)
}

// Set writes a glyph with attributes
func (b *Buffer) Set(row, col int, r rune, attr Attr) {
	if !b.writable(row, col) {
		return
	}
	b.cells[row*b.cols+col] = Cell{Rune: r, Attrs: attr}
}

// Clear blanks a cell
func (b *Buffer) Clear(row, col int) {
	if !b.writable(row, col) {
		return
	}
	b.cells[row*b.cols+col] = Cell{}
}

// Cell returns the cell at (row, col); ok is false outside the grid
func (b *Buffer) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Cell{}, false
	}
	return b.cells[row*b.cols+col], true
}

// Flush pushes the whole grid to the output
func (b *Buffer) Flush() {
	if b.out == nil {
		return
	}
	b.out.Flush(b.cells, b.cols, b.rows)
}

// Snapshot returns a copy of the grid, row-major
func (b *Buffer) Snapshot() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// String renders the grid as text, blank cells as spaces; rows joined by '\n'
func (b *Buffer) String() string {
	buf := make([]rune, 0, b.rows*(b.cols+1))
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			buf = append(buf, '\n')
		}
		for col := 0; col < b.cols; col++ {
			r := b.cells[row*b.cols+col].Rune
			if r == 0 {
				r = ' '
			}
			buf = append(buf, r)
		}
	}
	return string(buf)
}
