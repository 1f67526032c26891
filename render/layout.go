package render

import "github.com/lixenwraith/snake/constants"

// Rect is a screen region in terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no drawable cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns the rect shrunk by a one-cell border on every side
func (r Rect) Inner() Rect {
	in := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

// Contains reports whether (x,y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Centered returns a rect sized to the given percentages of r, centred in r
func (r Rect) Centered(percentX, percentY int) Rect {
	w := r.Width * percentX / 100
	h := r.Height * percentY / 100
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// screenLayout splits the viewport into board area and side panels
type screenLayout struct {
	game     Rect
	stats    Rect
	controls Rect
}

// computeLayout gives the game area at least GameAreaMinWidth columns
// The side panel shrinks first on narrow terminals
func computeLayout(width, height int) screenLayout {
	side := constants.SidePanelWidth
	if width-side < constants.GameAreaMinWidth {
		side = max(0, width-constants.GameAreaMinWidth)
	}
	game := Rect{X: 0, Y: 0, Width: width - side, Height: height}

	statsHeight := min(constants.StatsPanelHeight, height)
	stats := Rect{X: game.Width, Y: 0, Width: side, Height: statsHeight}
	controls := Rect{X: game.Width, Y: statsHeight, Width: side, Height: height - statsHeight}

	return screenLayout{game: game, stats: stats, controls: controls}
}

// boardGeometry places the board frame inside the game area's inner rect
// ok is false when the board does not fit at cell size 1
type boardGeometry struct {
	frame Rect // bordered board, centred in the game area
	cell  int  // rows per board cell, columns are cell*CellColumns
}

func computeBoard(inner Rect, boardWidth, boardHeight int) (boardGeometry, bool) {
	if boardWidth <= 0 || boardHeight <= 0 {
		return boardGeometry{}, false
	}
	minWidth := boardWidth*constants.CellColumns + 2
	minHeight := boardHeight + 2
	if inner.Width < minWidth || inner.Height < minHeight {
		return boardGeometry{}, false
	}

	cell := max(1, min((inner.Width-2)/constants.CellColumns/boardWidth, (inner.Height-2)/boardHeight))
	frameWidth := boardWidth*cell*constants.CellColumns + 2
	frameHeight := boardHeight*cell + 2

	return boardGeometry{
		frame: Rect{
			X:      inner.X + (inner.Width-frameWidth)/2,
			Y:      inner.Y + (inner.Height-frameHeight)/2,
			Width:  frameWidth,
			Height: frameHeight,
		},
		cell: cell,
	}, true
}

// cellOrigin returns the screen cell where a board cell's glyph is drawn
func (b boardGeometry) cellOrigin(x, y int) (int, int) {
	in := b.frame.Inner()
	cols := b.cell * constants.CellColumns
	return in.X + x*cols + (cols-1)/2, in.Y + y*b.cell + (b.cell-1)/2
}
