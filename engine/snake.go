package engine

import (
	"github.com/gammazero/deque"
	"github.com/lixenwraith/snake/core"
)

// Snake is an ordered body, head first, plus the current heading
// The body is never empty once constructed
type Snake struct {
	body      deque.Deque[core.Position]
	direction core.Direction
}

// NewSnake creates a single-segment snake heading right
func NewSnake(start core.Position) *Snake {
	s := &Snake{direction: core.Right}
	s.body.PushBack(start)
	return s
}

// Head returns the first segment
func (s *Snake) Head() core.Position {
	return s.body.Front()
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return s.body.Len()
}

// Segment returns the i-th segment, 0 being the head
func (s *Snake) Segment(i int) core.Position {
	return s.body.At(i)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []core.Position {
	out := make([]core.Position, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p core.Position) bool {
	return s.body.Index(func(seg core.Position) bool { return seg == p }) >= 0
}

// SetDirection changes heading unless d would reverse the snake into its neck
func (s *Snake) SetDirection(d core.Direction) {
	if d != s.direction.Opposite() {
		s.direction = d
	}
}

// MoveForward steps the head one cell, clamping at 0 on the low edges
// Returns the vacated tail so the caller can Grow with it
func (s *Snake) MoveForward() core.Position {
	head := s.Head()
	dx, dy := s.direction.Delta()
	next := core.Pos(uint16(max(0, int(head.X)+dx)), uint16(max(0, int(head.Y)+dy)))
	return s.advance(next)
}

// MoveForwardWrapping steps the head one cell on a toroidal width x height board
// width and height must be at least 1
func (s *Snake) MoveForwardWrapping(width, height uint16) core.Position {
	head := s.Head()
	dx, dy := s.direction.Delta()
	next := core.Pos(wrap(int(head.X)+dx, int(width)), wrap(int(head.Y)+dy, int(height)))
	return s.advance(next)
}

// wrap folds v into [0, n)
func wrap(v, n int) uint16 {
	return uint16(((v % n) + n) % n)
}

func (s *Snake) advance(head core.Position) core.Position {
	s.body.PushFront(head)
	return s.body.PopBack()
}

// Grow re-appends a tail previously returned by a move
func (s *Snake) Grow(oldTail core.Position) {
	s.body.PushBack(oldTail)
}

// SelfCollision reports whether the head shares a cell with any other segment
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}
