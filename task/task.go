package task

import "github.com/lixenwraith/starship/input"

// Rand is the random source used to build randomized tasks
// *math/rand/v2.Rand satisfies it
type Rand interface {
	IntN(n int) int
}

// Controls yields the player's input for the current tick
type Controls interface {
	Sample() input.Snapshot
}

// Alerter makes an audible signal; must not block
type Alerter interface {
	Alert()
}

// ControlsFunc adapts a function to Controls
type ControlsFunc func() input.Snapshot

func (f ControlsFunc) Sample() input.Snapshot { return f() }
