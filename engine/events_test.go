package engine

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EventNone, "none"},
		{EventMoved, "moved"},
		{EventFoodEaten, "food_eaten"},
		{EventGameOver, "game_over"},
		{Event(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
		{StateGameOver, "game_over"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
