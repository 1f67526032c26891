package app

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

// steering buffers direction input between ticks
// The first move in a tick window turns the snake at once; later moves only
// replace the pending direction, which is re-applied when the tick fires
type steering struct {
	pending core.Direction
	queued  bool
}

// Steer records a move request
func (s *steering) Steer(g *engine.Game, d core.Direction) {
	if !s.queued {
		g.SetDirection(d)
	}
	s.pending = d
	s.queued = true
}

// Flush applies the pending direction (or keeps the current one) and opens a new window
func (s *steering) Flush(g *engine.Game) {
	d := g.Snake().Direction()
	if s.queued {
		d = s.pending
	}
	s.queued = false
	g.SetDirection(d)
}

// Clear drops any pending direction, used when the snake is replaced
func (s *steering) Clear() {
	s.queued = false
}
