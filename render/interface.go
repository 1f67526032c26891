package render

import (
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/engine"
)

// Renderer draws a read-only view of the game each loop iteration
type Renderer interface {
	Render(game *engine.Game, cfg *config.GameConfig)
	// Sync forces a full redraw, used after terminal resize
	Sync()
}
