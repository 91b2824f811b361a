package render

import (
	"github.com/lixenwraith/starship/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying
type Cell = terminal.Cell
type Attr = terminal.Attr

// Style aliases for painters
const (
	AttrNormal = terminal.AttrNone
	AttrDim    = terminal.AttrDim
	AttrBold   = terminal.AttrBold
)
