package terminal

import "github.com/gdamore/tcell/v2"

// styleFromAttr converts terminal.Attr to a tcell style on default colors
func styleFromAttr(a Attr) tcell.Style {
	style := tcell.StyleDefault
	if a&AttrBold != 0 {
		style = style.Bold(true)
	}
	if a&AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

// AttrFromStyle converts a tcell style back to terminal.Attr, ignoring colors
func AttrFromStyle(style tcell.Style) Attr {
	_, _, mask := style.Decompose()

	var a Attr
	if mask&tcell.AttrBold != 0 {
		a |= AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		a |= AttrDim
	}
	return a
}
