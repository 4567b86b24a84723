package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short feedback cues for tower placement and leaking agents
// All Play methods are no-ops until Initialize succeeds, so a machine without audio runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayPlace plays a short high click for an accepted tower
func (sm *SoundManager) PlayPlace() {
	sm.play(NewToneGenerator(sampleRate, 880, 880, 60*time.Millisecond))
}

// PlayRemove plays a lower click for a removed tower
func (sm *SoundManager) PlayRemove() {
	sm.play(NewToneGenerator(sampleRate, 440, 440, 60*time.Millisecond))
}

// PlayError plays a low buzz for a rejected placement
func (sm *SoundManager) PlayError() {
	sm.play(NewBuzzGenerator(sampleRate, 120, 150*time.Millisecond))
}

// PlayLeak plays a falling sweep when an agent reaches the goal
func (sm *SoundManager) PlayLeak() {
	sm.play(NewToneGenerator(sampleRate, 660, 220, 300*time.Millisecond))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
