package input

import "github.com/gdamore/tcell/v2"

// Mapper turns a raw terminal event into an Action
type Mapper interface {
	Map(ev tcell.Event) Action
}

// KeyMapper is the table-driven Mapper used by the game
type KeyMapper struct {
	table *KeyTable
}

// NewKeyMapper creates a mapper over table; nil means DefaultKeyTable
func NewKeyMapper(table *KeyTable) *KeyMapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &KeyMapper{table: table}
}

// Map resolves key events through the table; everything else is NoAction
func (m *KeyMapper) Map(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return NoAction
	}

	if key.Key() == tcell.KeyRune {
		if a, ok := m.table.Runes[key.Rune()]; ok {
			return a
		}
		return NoAction
	}

	if a, ok := m.table.SpecialKeys[key.Key()]; ok {
		return a
	}
	return NoAction
}
