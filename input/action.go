// Package input translates terminal events into game actions
// Mapping is pure: the application loop applies the resulting Action
package input

import "github.com/lixenwraith/snake/core"

// ActionKind classifies a mapped input
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionPause
	ActionRestart
	ActionQuit
)

// Action is the high-level meaning of one input event
// Direction is meaningful only for ActionMove
type Action struct {
	Kind      ActionKind
	Direction core.Direction
}

// Move builds a direction change action
func Move(d core.Direction) Action {
	return Action{Kind: ActionMove, Direction: d}
}

var (
	NoAction = Action{Kind: ActionNone}
	Pause    = Action{Kind: ActionPause}
	Restart  = Action{Kind: ActionRestart}
	Quit     = Action{Kind: ActionQuit}
)

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return "move_" + a.Direction.String()
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	}
	return "none"
}
