package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/fatih/color"

	"github.com/lixenwraith/starship/terminal"
)

var (
	crashMu       sync.Mutex
	crashTerminal terminal.Terminal

	// crashExit and crashOut are replaced in tests
	crashExit           = os.Exit
	crashOut  io.Writer = os.Stderr
)

// SetCrashTerminal registers the terminal restored by HandleCrash
func SetCrashTerminal(t terminal.Terminal) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	// Terminal cleanup if available
	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(crashOut, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
