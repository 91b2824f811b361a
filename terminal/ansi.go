package terminal

// Sequences used by EmergencyReset; normal rendering goes through tcell
var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	// DECAWM on: tcell may leave auto-wrap disabled when killed mid-frame
	csiAutoWrapOn = []byte("\x1b[?7h")
)
