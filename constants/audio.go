package constants

import "time"

// Audio Engine Timing
const (
	// SampleRate is the default speaker sample rate in Hz
	SampleRate = 48000

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the linear volume scale (0.0-1.0)
	DefaultMasterVolume = 0.6
)

// Food Sound
const (
	FoodToneHz       = 880
	FoodToneDuration = 60 * time.Millisecond
)

// Game Over Sound
const (
	GameOverToneCount    = 3
	GameOverToneHz       = 440
	GameOverToneStepHz   = 110 // each tone drops by this much
	GameOverToneDuration = 90 * time.Millisecond

	// GameOverToneGap is the silence between game over tones; the terminal bell fallback sleeps this long
	GameOverToneGap = 100 * time.Millisecond
)
