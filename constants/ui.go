package constants

// UI Layout Constants
const (
	// GameAreaMinWidth is the minimum column count reserved for the board panel
	GameAreaMinWidth = 50

	// SidePanelWidth is the fixed width of the stats/controls column
	SidePanelWidth = 25

	// StatsPanelHeight is the height of the stats panel including its frame
	StatsPanelHeight = 6

	// CellColumns is the number of terminal columns one board cell spans
	CellColumns = 2

	// PausePopupPercentX/Y size the pause overlay relative to the screen
	PausePopupPercentX = 30
	PausePopupPercentY = 20

	// GameOverPopupPercentX/Y size the game over overlay relative to the screen
	GameOverPopupPercentX = 40
	GameOverPopupPercentY = 30
)

// Board Glyphs
const (
	GlyphHead = '●'
	GlyphBody = '○'
	GlyphFood = '◆'
)

// Panel Titles
const (
	TitleGame     = "Snake Game"
	TitleStats    = "Stats"
	TitleControls = "Controls"
	TitlePaused   = "PAUSED"
	TitleGameOver = "GAME OVER"
)

// HeadHighlight is how far the head colour is blended toward white
const HeadHighlight = 0.45
