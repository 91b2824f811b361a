// Package terminal wraps the physical character-grid display.
//
// The scene never talks to tcell directly: it renders into a cell slice and
// hands it to Terminal.Flush once per tick. Input arrives as Event values
// translated from tcell key events.
//
// The bottom-right cell is never written. Some terminals scroll or wrap when
// that cell is addressed, so Flush leaves it untouched.
package terminal
