package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferTime = 100 * time.Millisecond
)

// Output is the playback device a page's track is handed to
type Output interface {
	// Play adds streamers to the output, initialising the device on first use
	Play(s ...beep.Streamer) error
	// Clear silences everything currently playing
	Clear()
}

// SoundManager owns the speaker and mixes every track into it
// The speaker is initialised lazily at a fixed rate; tracks are resampled to it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager; no device is touched until the first Play
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// SampleRate is the device rate tracks must be resampled to
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sampleRate
}

func (sm *SoundManager) initialize() error {
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes s into the output
func (sm *SoundManager) Play(s ...beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.initialize(); err != nil {
		return err
	}
	speaker.Lock()
	sm.mixer.Add(s...)
	speaker.Unlock()
	return nil
}

// Clear stops all sounds
func (sm *SoundManager) Clear() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cleanup clears the mixer and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer = &beep.Mixer{}
	sm.initialized = false
}
