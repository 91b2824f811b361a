package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerminal implements Terminal on a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal backed by the process tty
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewFromScreen(screen), nil
}

// NewFromScreen wraps an existing screen, e.g. tcell.NewSimulationScreen in tests
func NewFromScreen(screen tcell.Screen) Terminal {
	return &tcellTerminal{screen: screen}
}

// Init enters raw mode and hides the cursor
func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

// Flush copies cells to the screen and shows them
// The bottom-right cell of the screen is skipped
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	screenW, screenH := t.screen.Size()

	for y := 0; y < height && y < screenH; y++ {
		for x := 0; x < width && x < screenW; x++ {
			if y == screenH-1 && x == screenW-1 {
				continue
			}
			c := cells[y*width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, styleFromAttr(c.Attrs))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := translateEvent(ev); ok {
			return out
		}
	}
}

func (t *tcellTerminal) Beep() error {
	return t.screen.Beep()
}

// translateEvent maps tcell events the scene cares about; others are dropped
func translateEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: keyFromTcell(ev.Key()), Rune: ev.Rune()}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

func keyFromTcell(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}
	return KeyNone
}
