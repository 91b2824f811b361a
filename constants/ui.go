package constants

// Logging
const (
	LogDir      = "logs"
	LogFileName = "starship.log"

	// MaxLogSize triggers rotation to LogFileName+".old" on startup
	MaxLogSize = 10 * 1024 * 1024
)
