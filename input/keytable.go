package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, case sensitive
	Runes map[rune]Action
}

// DefaultKeyTable returns arrow, WASD and vi bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     Move(core.Up),
			tcell.KeyDown:   Move(core.Down),
			tcell.KeyLeft:   Move(core.Left),
			tcell.KeyRight:  Move(core.Right),
			tcell.KeyEscape: Quit,
			tcell.KeyCtrlC:  Quit,
		},
		Runes: map[rune]Action{
			// WASD
			'w': Move(core.Up),
			'a': Move(core.Left),
			's': Move(core.Down),
			'd': Move(core.Right),

			// vi
			'k': Move(core.Up),
			'h': Move(core.Left),
			'j': Move(core.Down),
			'l': Move(core.Right),

			' ': Pause,
			'p': Pause,
			'r': Restart,
			'R': Restart,
			'q': Quit,
			'Q': Quit,
		},
	}
}

// Binding is one line of the controls legend
type Binding struct {
	Keys   string
	Action string
}

// Bindings returns the controls legend shown beside the board
func Bindings() []Binding {
	return []Binding{
		{"Arrows/WASD/hjkl", "Move"},
		{"Space/P", "Pause/Resume"},
		{"R", "Restart"},
		{"Q/Esc", "Quit"},
	}
}
