package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// SoundManager plays synthesized cues through the system speaker
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	sampleRate  beep.SampleRate
	initialized bool
}

// NewSoundManager creates a manager; nil cfg means DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops pending cues and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues the cue for ev; it returns without waiting for playback
func (sm *SoundManager) Play(ev engine.Event) {
	var cue beep.Streamer
	switch ev {
	case engine.EventFoodEaten:
		cue = sm.foodCue()
	case engine.EventGameOver:
		cue = sm.gameOverCue()
	default:
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Play(sm.withVolume(cue))
}

// foodCue is a short high blip
func (sm *SoundManager) foodCue() beep.Streamer {
	return sm.tone(constants.FoodToneHz, constants.FoodToneDuration)
}

// gameOverCue is a falling run of tones separated by silence
func (sm *SoundManager) gameOverCue() beep.Streamer {
	parts := make([]beep.Streamer, 0, constants.GameOverToneCount*2-1)
	for i := 0; i < constants.GameOverToneCount; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sm.sampleRate.N(constants.GameOverToneGap)))
		}
		hz := constants.GameOverToneHz - i*constants.GameOverToneStepHz
		parts = append(parts, sm.tone(float64(hz), constants.GameOverToneDuration))
	}
	return beep.Seq(parts...)
}

// tone returns a sine of the given length; an invalid frequency degrades to silence
func (sm *SoundManager) tone(hz float64, d time.Duration) beep.Streamer {
	n := sm.sampleRate.N(d)
	sine, err := generators.SineTone(sm.sampleRate, hz)
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, sine)
}

// withVolume scales s by the linear master volume
func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	vol := sm.cfg.MasterVolume
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(vol, 1e-3)),
		Silent:   vol <= 0,
	}
}
