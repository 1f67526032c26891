// Package audio reacts to discrete game events with audible cues
package audio

import (
	"errors"

	"github.com/lixenwraith/snake/engine"
)

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")

// SoundSystem plays a cue for a game event; implementations never fail loudly
type SoundSystem interface {
	Play(ev engine.Event)
}

// NoSound discards every event
type NoSound struct{}

func (NoSound) Play(engine.Event) {}
