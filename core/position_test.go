package core

import "testing"

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Opposite() == d {
			t.Errorf("Opposite of %v must differ from itself", d)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Expected Opposite(Opposite(%v)) == %v, got %v", d, d, got)
		}
	}
}

func TestDeltaMatchesOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("Delta of %v and its opposite should cancel, got (%d,%d)+(%d,%d)", d, dx, dy, ox, oy)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("Delta of %v should be a unit step, got (%d,%d)", d, dx, dy)
		}
	}
}

func TestPositionEqualityAndBounds(t *testing.T) {
	if Pos(3, 4) != (Position{X: 3, Y: 4}) {
		t.Error("Positions with equal coordinates should be equal")
	}
	if Pos(3, 4) == Pos(4, 3) {
		t.Error("Swapped coordinates should not be equal")
	}
	if !Pos(4, 4).InBounds(5, 5) {
		t.Error("(4,4) should be inside a 5x5 board")
	}
	if Pos(5, 0).InBounds(5, 5) || Pos(0, 5).InBounds(5, 5) {
		t.Error("Coordinates equal to the dimension should be out of bounds")
	}
	if s := Pos(1, 2).String(); s != "(1,2)" {
		t.Errorf("Expected (1,2), got %s", s)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
