// Package config holds the session settings shared by the loop, renderer and sound
package config

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
)

// ErrBoardTooSmall is returned when the board cannot hold the seeded snake plus food
var ErrBoardTooSmall = errors.New("board too small")

// GameConfig is presentation and session state owned outside the engine
// HighScore lives only for the process lifetime
type GameConfig struct {
	BoardWidth   uint16
	BoardHeight  uint16
	EnableSound  bool
	EnableColors bool
	WallWrapping bool

	SnakeColor      tcell.Color
	FoodColor       tcell.Color
	WallColor       tcell.Color
	BackgroundColor tcell.Color
	BorderColor     tcell.Color

	HighScore uint32
}

// DefaultConfig returns the stock palette on a default-sized wrapping board
func DefaultConfig() *GameConfig {
	cfg := &GameConfig{
		BoardWidth:      constants.DefaultBoardWidth,
		BoardHeight:     constants.DefaultBoardHeight,
		EnableSound:     true,
		EnableColors:    true,
		SnakeColor:      tcell.ColorGreen,
		FoodColor:       tcell.ColorLightCoral,
		BackgroundColor: tcell.ColorBlack,
		BorderColor:     tcell.ColorLightCyan,
	}
	cfg.SetWallWrapping(true)
	return cfg
}

// SetWallWrapping switches topology and picks the matching wall colour
func (c *GameConfig) SetWallWrapping(enabled bool) {
	c.WallWrapping = enabled
	if enabled {
		c.WallColor = tcell.ColorLightGreen
	} else {
		c.WallColor = tcell.ColorRed
	}
}

// UpdateHighScore raises the session high score; it never decreases
func (c *GameConfig) UpdateHighScore(score uint32) {
	if score > c.HighScore {
		c.HighScore = score
	}
}

// Validate rejects boards that cannot fit the seeded snake and one free cell
func (c *GameConfig) Validate() error {
	if c.BoardWidth == 0 || c.BoardHeight == 0 {
		return fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, c.BoardWidth, c.BoardHeight)
	}
	if need := c.MinBoardWidth(); int(c.BoardWidth) < need {
		return fmt.Errorf("%w: width %d, need at least %d", ErrBoardTooSmall, c.BoardWidth, need)
	}
	return nil
}

// MinBoardWidth is the narrowest board the seeded snake fits on
// The snake is seeded on one row growing right from the centre column,
// so solid walls need the whole body between the centre and the right wall
func (c *GameConfig) MinBoardWidth() int {
	if c.WallWrapping {
		return constants.InitialSnakeLength + 1
	}
	return 2*constants.InitialSnakeLength - 1
}
