package engine

// Event is the discrete outcome of one Update call
type Event uint8

const (
	EventNone Event = iota
	EventMoved
	EventFoodEaten
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// State is the game state machine position
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}
