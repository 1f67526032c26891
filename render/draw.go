package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// fillRect paints every cell of r with ch
func fillRect(screen tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawBox draws a single-line border around r with an optional title on the top edge
func drawBox(screen tcell.Screen, r Rect, title string, borderStyle, titleStyle tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, boxHorizontal, nil, borderStyle)
		screen.SetContent(x, bottom, boxHorizontal, nil, borderStyle)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, boxVertical, nil, borderStyle)
		screen.SetContent(right, y, boxVertical, nil, borderStyle)
	}
	screen.SetContent(r.X, r.Y, boxTopLeft, nil, borderStyle)
	screen.SetContent(right, r.Y, boxTopRight, nil, borderStyle)
	screen.SetContent(r.X, bottom, boxBottomLeft, nil, borderStyle)
	screen.SetContent(right, bottom, boxBottomRight, nil, borderStyle)

	if title != "" {
		drawText(screen, r.X+1, r.Y, r.Width-2, " "+title+" ", titleStyle)
	}
}

// drawText writes s starting at (x,y), clipped to maxWidth columns
// Returns the number of columns written
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		screen.SetContent(x+col, y, ch, nil, style)
		col += w
	}
	return col
}

// drawCentered writes s horizontally centred on row y of r
func drawCentered(screen tcell.Screen, r Rect, y int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	x := r.X
	if w < r.Width {
		x += (r.Width - w) / 2
	}
	drawText(screen, x, y, r.X+r.Width-x, s, style)
}

// drawLines centres a block of lines vertically and horizontally in r
func drawLines(screen tcell.Screen, r Rect, lines []string, style tcell.Style) {
	y := r.Y
	if len(lines) < r.Height {
		y += (r.Height - len(lines)) / 2
	}
	for i, line := range lines {
		if y+i >= r.Y+r.Height {
			return
		}
		drawCentered(screen, r, y+i, line, style)
	}
}
