package input

import (
	"log"

	"github.com/lixenwraith/starship/terminal"
)

// EventSource is the blocking side of the terminal
type EventSource interface {
	PollEvent() terminal.Event
}

// Pump forwards events from src to out until the source closes
// Quit keys invoke onQuit instead of being forwarded
// Events are dropped when out is full so a slow consumer never stalls input
func Pump(src EventSource, out chan<- terminal.Event, table *KeyTable, onQuit func()) {
	if table == nil {
		table = DefaultKeyTable()
	}
	for {
		ev := src.PollEvent()
		switch {
		case ev.Type == terminal.EventClosed:
			log.Printf("input: event source closed")
			return
		case table.Lookup(ev) == ActionQuit:
			if onQuit != nil {
				onQuit()
			}
			continue
		}

		select {
		case out <- ev:
		default:
		}
	}
}
