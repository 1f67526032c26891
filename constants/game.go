package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed simulation step; the snake moves once per tick
	TickInterval = 100 * time.Millisecond

	// EventChannelSize is the buffer between the terminal event pump and the loop
	EventChannelSize = 256
)

// Snake & Scoring Constants
const (
	// InitialSnakeLength is the snake length after construction and every reset
	InitialSnakeLength = 4

	// FoodScore is awarded per food eaten
	FoodScore = 10

	// FoodSpawnAttempts bounds random rejection sampling before falling back to a free-cell scan
	FoodSpawnAttempts = 64
)

// Board Defaults
const (
	DefaultBoardWidth  = 30
	DefaultBoardHeight = 20
)
