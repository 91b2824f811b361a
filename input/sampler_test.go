package input

import (
	"testing"

	"github.com/lixenwraith/starship/terminal"
)

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeKey(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func queue(evs ...terminal.Event) chan terminal.Event {
	ch := make(chan terminal.Event, len(evs)+1)
	for _, ev := range evs {
		ch <- ev
	}
	return ch
}

func TestSample(t *testing.T) {
	tests := []struct {
		name string
		evs  []terminal.Event
		want Snapshot
	}{
		{"empty", nil, Snapshot{}},
		{"up", []terminal.Event{key(terminal.KeyUp)}, Snapshot{RowDelta: -1}},
		{"down right", []terminal.Event{key(terminal.KeyDown), key(terminal.KeyRight)}, Snapshot{RowDelta: 1, ColDelta: 1}},
		{"left", []terminal.Event{key(terminal.KeyLeft)}, Snapshot{ColDelta: -1}},
		{"fire", []terminal.Event{runeKey(' ')}, Snapshot{Fire: true}},
		{"last wins per axis", []terminal.Event{key(terminal.KeyUp), key(terminal.KeyLeft), key(terminal.KeyDown), key(terminal.KeyRight)}, Snapshot{RowDelta: 1, ColDelta: 1}},
		{"unrecognized ignored", []terminal.Event{runeKey('x'), key(terminal.KeyEnter), key(terminal.KeyNone)}, Snapshot{}},
		{"resize ignored", []terminal.Event{{Type: terminal.EventResize, Width: 3, Height: 3}}, Snapshot{}},
		{"mixed", []terminal.Event{runeKey('z'), key(terminal.KeyUp), runeKey(' ')}, Snapshot{RowDelta: -1, Fire: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(queue(tt.evs...), nil)
			if got := s.Sample(); got != tt.want {
				t.Errorf("Sample() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSampleDrainsQueue(t *testing.T) {
	ch := queue(key(terminal.KeyUp), runeKey(' '))
	s := NewSampler(ch, nil)

	s.Sample()
	if len(ch) != 0 {
		t.Fatalf("%d events left after Sample", len(ch))
	}
	if got := s.Sample(); got != (Snapshot{}) {
		t.Errorf("second Sample() = %+v, want zero", got)
	}
}

func TestSampleClosedChannel(t *testing.T) {
	ch := queue(key(terminal.KeyDown))
	close(ch)
	s := NewSampler(ch, nil)

	if got := s.Sample(); got.RowDelta != 1 {
		t.Errorf("Sample() = %+v", got)
	}
	// Closed and empty must not block or spin
	if got := s.Sample(); got != (Snapshot{}) {
		t.Errorf("Sample() after close = %+v", got)
	}
}

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		ev   terminal.Event
		want Action
	}{
		{key(terminal.KeyEscape), ActionQuit},
		{key(terminal.KeyCtrlC), ActionQuit},
		{runeKey('q'), ActionQuit},
		{runeKey(' '), ActionFire},
		{key(terminal.KeyRight), ActionRight},
		{runeKey('Q'), ActionNone},
		{terminal.Event{Type: terminal.EventResize}, ActionNone},
	}
	for _, tt := range tests {
		if got := kt.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%+v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}
