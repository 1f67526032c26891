package engine

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// spawnFood places food on a uniformly chosen cell not covered by the snake
// Returns false and leaves food unchanged when the board is full
func (g *Game) spawnFood() bool {
	w, h := int(g.width), int(g.height)
	for range constants.FoodSpawnAttempts {
		p := core.Pos(uint16(g.rng.IntN(w)), uint16(g.rng.IntN(h)))
		if !g.snake.Contains(p) {
			g.food = p
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return false
	}
	g.food = free[g.rng.IntN(len(free))]
	return true
}

// freeCells lists every board cell not occupied by the snake, row-major
func (g *Game) freeCells() []core.Position {
	occupied := make(map[core.Position]struct{}, g.snake.Len())
	for i := 0; i < g.snake.Len(); i++ {
		occupied[g.snake.Segment(i)] = struct{}{}
	}

	free := make([]core.Position, 0, max(0, int(g.width)*int(g.height)-len(occupied)))
	for y := uint16(0); y < g.height; y++ {
		for x := uint16(0); x < g.width; x++ {
			p := core.Pos(x, y)
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
