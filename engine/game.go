package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// Game owns the snake, food, score and state for one session
// All methods are total over a board of at least 1x1 and are not safe for concurrent use
type Game struct {
	snake *Snake
	food  core.Position
	score uint32
	state State

	width        uint16
	height       uint16
	wallWrapping bool

	rng *rand.Rand
}

// NewGame creates a playing game on a width x height board
// A nil rng is replaced by a time-seeded PCG source
func NewGame(width, height uint16, wallWrapping bool, rng *rand.Rand) *Game {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	g := &Game{
		width:        width,
		height:       height,
		wallWrapping: wallWrapping,
		rng:          rng,
	}
	g.Reset()
	return g
}

// Snake returns the live snake; callers must not mutate it outside the loop
func (g *Game) Snake() *Snake {
	return g.snake
}

func (g *Game) Food() core.Position {
	return g.food
}

func (g *Game) Score() uint32 {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

// Width returns the board width in cells
func (g *Game) Width() uint16 {
	return g.width
}

// Height returns the board height in cells
func (g *Game) Height() uint16 {
	return g.height
}

func (g *Game) WallWrapping() bool {
	return g.wallWrapping
}

// SetWallWrapping switches board topology; it survives Reset
func (g *Game) SetWallWrapping(enabled bool) {
	g.wallWrapping = enabled
}

// SetDirection steers the snake; ignored unless playing
func (g *Game) SetDirection(d core.Direction) {
	if g.state == StatePlaying {
		g.snake.SetDirection(d)
	}
}

// TogglePause flips between playing and paused; game over is left alone
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// Reset starts a fresh round on the same board with the same wrapping mode
func (g *Game) Reset() {
	g.snake = g.seedSnake()
	g.score = 0
	g.state = StatePlaying
	g.spawnFood()
}

// Update advances the simulation by one tick
func (g *Game) Update() Event {
	if g.state != StatePlaying {
		return EventNone
	}

	var oldTail core.Position
	if g.wallWrapping {
		oldTail = g.snake.MoveForwardWrapping(g.width, g.height)
	} else {
		oldTail = g.snake.MoveForward()
	}
	head := g.snake.Head()

	// Clamped moves on the low edge leave the head on its neck, caught by self collision
	if !g.wallWrapping && !head.InBounds(g.width, g.height) {
		g.state = StateGameOver
		return EventGameOver
	}

	if g.snake.SelfCollision() {
		g.state = StateGameOver
		return EventGameOver
	}

	if head == g.food {
		g.snake.Grow(oldTail)
		g.score += constants.FoodScore
		g.spawnFood()
		return EventFoodEaten
	}

	return EventMoved
}

// startPosition is the canonical seed cell near the board centre
func (g *Game) startPosition() core.Position {
	return core.Pos(g.width/2, g.height/2)
}

// seedSnake grows a fresh snake to the initial length without collision checks
func (g *Game) seedSnake() *Snake {
	s := NewSnake(g.startPosition())
	for i := 1; i < constants.InitialSnakeLength; i++ {
		s.Grow(s.MoveForwardWrapping(g.width, g.height))
	}
	return s
}
