package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyCtrlC

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// EventType discriminates input events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed // Terminal finalized, no more events
)

// Event is a single input event
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// Set for EventResize
	Width  int
	Height int
}
