package constants

import "time"

// Scheduler Timing
const (
	// TickInterval is the fixed sleep between scheduler ticks
	TickInterval = 100 * time.Millisecond
)

// Starfield
const (
	// StarCount is the number of blink tasks created at startup
	StarCount = 100

	// StarSymbols are the glyphs a star is drawn with
	StarSymbols = "+*.:"

	// BlinkMaxOffset is the upper bound (inclusive) of the per-star extra hold in ticks
	BlinkMaxOffset = 20
)

// Blink phase lengths in ticks
const (
	BlinkDimTicks    = 1
	BlinkNormalTicks = 3
	BlinkBoldTicks   = 5
	BlinkFadeTicks   = 3 // Normal phase after bold
)

// Projectile
const (
	FireRowSpeed = -0.3
	FireColSpeed = 0.0

	FireSparkSymbol = '*'
	FireFlashSymbol = 'O'
	FireVertSymbol  = '|'
	FireHorizSymbol = '-'
)

// Spaceship
const (
	// ShipBorder is the number of cells kept free between the ship and each surface edge
	ShipBorder = 1

	ShipFrame1 = "rocket_frame_1.txt"
	ShipFrame2 = "rocket_frame_2.txt"
)
