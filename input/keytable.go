package input

import "github.com/lixenwraith/starship/terminal"

// Action is what a key means to the scene
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionQuit
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[terminal.Key]Action

	// Printable characters
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Action{
			terminal.KeyUp:     ActionUp,
			terminal.KeyDown:   ActionDown,
			terminal.KeyLeft:   ActionLeft,
			terminal.KeyRight:  ActionRight,
			terminal.KeyEscape: ActionQuit,
			terminal.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			' ': ActionFire,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves an event; non-key events and unbound keys map to ActionNone
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}
