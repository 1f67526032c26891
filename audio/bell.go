package audio

import (
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Beeper rings the terminal bell; tcell.Screen satisfies it
type Beeper interface {
	Beep() error
}

// BellSound is the fallback cue when no audio device is available
// Game over rings several times with a short blocking sleep between rings
type BellSound struct {
	beeper Beeper
	sleep  func(time.Duration)
}

// NewBellSound rings through b
func NewBellSound(b Beeper) *BellSound {
	return &BellSound{beeper: b, sleep: time.Sleep}
}

// Play rings once for food and GameOverToneCount times for game over
func (s *BellSound) Play(ev engine.Event) {
	switch ev {
	case engine.EventFoodEaten:
		_ = s.beeper.Beep()
	case engine.EventGameOver:
		for i := 0; i < constants.GameOverToneCount; i++ {
			if i > 0 {
				s.sleep(constants.GameOverToneGap)
			}
			_ = s.beeper.Beep()
		}
	}
}
