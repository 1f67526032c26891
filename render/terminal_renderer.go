package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer drawing to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Render draws one complete frame and flushes it
func (r *TerminalRenderer) Render(game *engine.Game, cfg *config.GameConfig) {
	p := newPalette(cfg)
	r.screen.SetStyle(p.background)
	r.screen.Clear()

	width, height := r.screen.Size()
	full := Rect{Width: width, Height: height}
	layout := computeLayout(width, height)

	r.drawGameArea(layout.game, game, p)
	r.drawStats(layout.stats, game, cfg, p)
	r.drawControls(layout.controls, p)

	switch game.State() {
	case engine.StatePaused:
		r.drawPopup(full.Centered(constants.PausePopupPercentX, constants.PausePopupPercentY),
			constants.TitlePaused, []string{"Press Space to resume"}, p)
	case engine.StateGameOver:
		r.drawPopup(full.Centered(constants.GameOverPopupPercentX, constants.GameOverPopupPercentY),
			constants.TitleGameOver, []string{
				"",
				fmt.Sprintf("Final Score: %d", game.Score()),
				"",
				"Press R to restart",
				"Press Q to quit",
			}, p)
	}

	r.screen.Show()
}

// Sync redraws the whole terminal on the next frame
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

// drawGameArea draws the framed board or the too-small warning
func (r *TerminalRenderer) drawGameArea(area Rect, game *engine.Game, p palette) {
	if area.Empty() {
		return
	}
	drawBox(r.screen, area, constants.TitleGame, p.border, p.title)
	inner := area.Inner()

	bw, bh := int(game.Width()), int(game.Height())
	board, ok := computeBoard(inner, bw, bh)
	if !ok {
		drawLines(r.screen, inner, []string{
			"Terminal too small!",
			fmt.Sprintf("Minimum size: %dx%d", bw*constants.CellColumns+2, bh+2),
			fmt.Sprintf("Current size: %dx%d", inner.Width, inner.Height),
		}, p.warning)
		return
	}

	// Wall colour shows the topology: wrapping or solid
	drawBox(r.screen, board.frame, "", p.wall, p.title)

	// Glyphs are clipped to the cells inside the wall frame
	cells := board.frame.Inner()

	food := game.Food()
	if fx, fy := board.cellOrigin(int(food.X), int(food.Y)); cells.Contains(fx, fy) {
		r.screen.SetContent(fx, fy, constants.GlyphFood, nil, p.food)
	}

	// Body first so the head wins if a segment overlaps it after a fatal move
	snake := game.Snake()
	for i := snake.Len() - 1; i >= 0; i-- {
		seg := snake.Segment(i)
		x, y := board.cellOrigin(int(seg.X), int(seg.Y))
		// A head that ran into a solid wall maps onto or past the frame
		if !cells.Contains(x, y) {
			continue
		}
		if i == 0 {
			r.screen.SetContent(x, y, constants.GlyphHead, nil, p.head)
		} else {
			r.screen.SetContent(x, y, constants.GlyphBody, nil, p.body)
		}
	}
}

// drawStats draws score, session high score and snake length
func (r *TerminalRenderer) drawStats(area Rect, game *engine.Game, cfg *config.GameConfig, p palette) {
	if area.Empty() {
		return
	}
	drawBox(r.screen, area, constants.TitleStats, p.border, p.title)
	inner := area.Inner()

	rows := []struct {
		label string
		value string
		style tcell.Style
	}{
		{"Score: ", fmt.Sprintf("%d", game.Score()), p.score},
		{"High Score: ", fmt.Sprintf("%d", cfg.HighScore), p.highScore},
		{"Length: ", fmt.Sprintf("%d", game.Snake().Len()), p.length},
	}
	for i, row := range rows {
		if i >= inner.Height {
			return
		}
		y := inner.Y + i
		n := drawText(r.screen, inner.X+1, y, inner.Width-1, row.label, p.text)
		drawText(r.screen, inner.X+1+n, y, inner.Width-1-n, row.value, row.style)
	}
}

// drawControls draws the key legend
func (r *TerminalRenderer) drawControls(area Rect, p palette) {
	if area.Empty() {
		return
	}
	drawBox(r.screen, area, constants.TitleControls, p.border, p.title)
	inner := area.Inner()

	y := inner.Y
	for _, b := range input.Bindings() {
		if y+1 >= inner.Y+inner.Height {
			return
		}
		drawText(r.screen, inner.X+1, y, inner.Width-1, b.Keys, p.score)
		drawText(r.screen, inner.X+3, y+1, inner.Width-3, b.Action, p.text)
		y += 2
	}
}

// drawPopup clears rect and draws a titled modal with centred lines
func (r *TerminalRenderer) drawPopup(rect Rect, title string, lines []string, p palette) {
	if rect.Empty() {
		return
	}
	fillRect(r.screen, rect, ' ', p.background)
	drawBox(r.screen, rect, title, p.border, p.title)
	inner := rect.Inner()
	for i, line := range lines {
		if i >= inner.Height {
			return
		}
		drawCentered(r.screen, inner, inner.Y+i, line, p.text)
	}
}
