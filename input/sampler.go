package input

import (
	"github.com/lixenwraith/starship/terminal"
)

// Snapshot is the reduced input state for one tick
type Snapshot struct {
	RowDelta int // -1, 0, 1
	ColDelta int // -1, 0, 1
	Fire     bool
}

// Sampler drains pending key events without blocking
type Sampler struct {
	events <-chan terminal.Event
	table  *KeyTable
}

// NewSampler creates a sampler reading from events
func NewSampler(events <-chan terminal.Event, table *KeyTable) *Sampler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Sampler{events: events, table: table}
}

// Sample consumes every queued event and reduces them to a Snapshot
// Within one call the last direction key on each axis wins
func (s *Sampler) Sample() Snapshot {
	var snap Snapshot
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return snap
			}
			switch s.table.Lookup(ev) {
			case ActionUp:
				snap.RowDelta = -1
			case ActionDown:
				snap.RowDelta = 1
			case ActionLeft:
				snap.ColDelta = -1
			case ActionRight:
				snap.ColDelta = 1
			case ActionFire:
				snap.Fire = true
			}
		default:
			return snap
		}
	}
}
