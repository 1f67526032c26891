package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lucasb-eyer/go-colorful"
)

// Panel text colours, fixed regardless of board palette
var (
	RgbScore     = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbHighScore = tcell.NewRGBColor(218, 112, 214) // Orchid
	RgbLength    = tcell.NewRGBColor(0, 206, 209)   // Dark Turquoise
	RgbText      = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbWarning   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
)

// palette is the set of styles used for one frame
type palette struct {
	background tcell.Style
	border     tcell.Style
	wall       tcell.Style
	title      tcell.Style
	text       tcell.Style
	head       tcell.Style
	body       tcell.Style
	food       tcell.Style
	score      tcell.Style
	highScore  tcell.Style
	length     tcell.Style
	warning    tcell.Style
}

// newPalette derives frame styles from the session config
// Colours disabled collapses every style to the terminal default
func newPalette(cfg *config.GameConfig) palette {
	if !cfg.EnableColors {
		plain := tcell.StyleDefault
		return palette{
			background: plain,
			border:     plain,
			wall:       plain,
			title:      plain.Bold(true),
			text:       plain,
			head:       plain.Bold(true),
			body:       plain,
			food:       plain,
			score:      plain.Bold(true),
			highScore:  plain.Bold(true),
			length:     plain.Bold(true),
			warning:    plain.Bold(true),
		}
	}

	bg := tcell.StyleDefault.Background(cfg.BackgroundColor)
	return palette{
		background: bg,
		border:     bg.Foreground(cfg.BorderColor),
		wall:       bg.Foreground(cfg.WallColor),
		title:      bg.Foreground(cfg.BorderColor).Bold(true),
		text:       bg.Foreground(RgbText),
		head:       bg.Foreground(highlight(cfg.SnakeColor, constants.HeadHighlight)).Bold(true),
		body:       bg.Foreground(cfg.SnakeColor),
		food:       bg.Foreground(cfg.FoodColor),
		score:      bg.Foreground(RgbScore).Bold(true),
		highScore:  bg.Foreground(RgbHighScore).Bold(true),
		length:     bg.Foreground(RgbLength).Bold(true),
		warning:    bg.Foreground(RgbWarning).Bold(true),
	}
}

// highlight blends c toward white by amount in CIE-Lab space
// Colours without an RGB value (e.g. ColorDefault) are returned unchanged
func highlight(c tcell.Color, amount float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return c
	}
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	hr, hg, hb := base.BlendLab(white, amount).Clamped().RGB255()
	return tcell.NewRGBColor(int32(hr), int32(hg), int32(hb))
}
