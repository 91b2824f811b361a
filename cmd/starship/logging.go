package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/starship/constants"
)

var (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = int64(constants.MaxLogSize)
)

func logPath() string {
	return filepath.Join(logDir, logFileName)
}

// setupLogging directs the standard logger to the log file when debug is set, otherwise discards it
// The previous log is rotated to .old once it exceeds maxLogSize
// Returns the open file for the caller to close, nil when logging is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := logPath()
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== starship started (pid %d) ===", os.Getpid())
	return f
}
