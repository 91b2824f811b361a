package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/starship/constants"
)

// Config holds the choreography parameters
type Config struct {
	// AssetDir is read for sprite frames; empty uses the frames built into the binary
	AssetDir string

	Stars        int
	TickInterval time.Duration

	// Seed for star placement; 0 picks one from the clock
	Seed uint64

	// Muted disables the speaker tone; the terminal bell is used instead
	Muted bool

	FireRowSpeed float64
	FireColSpeed float64
}

// DefaultConfig returns the stock scene
func DefaultConfig() Config {
	return Config{
		Stars:        constants.StarCount,
		TickInterval: constants.TickInterval,
		FireRowSpeed: constants.FireRowSpeed,
		FireColSpeed: constants.FireColSpeed,
	}
}

// ErrInvalidConfig wraps every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the scheduler or tasks cannot run with
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	if c.Stars < 0 {
		return fmt.Errorf("%w: star count must not be negative, got %d", ErrInvalidConfig, c.Stars)
	}
	if c.FireRowSpeed == 0 && c.FireColSpeed == 0 {
		return fmt.Errorf("%w: fire speed must be non-zero", ErrInvalidConfig)
	}
	return nil
}
