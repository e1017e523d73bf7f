package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// TestSoundManagerGracefulDegradation verifies operations don't panic before the device is opened
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Clear()
	sm.Cleanup()
	sm.Cleanup()
}

// TestSoundManagerSampleRate verifies tracks are opened at the device rate
func TestSoundManagerSampleRate(t *testing.T) {
	sm := NewSoundManager()
	if sm.SampleRate() != beep.SampleRate(48000) {
		t.Errorf("Expected 48000Hz, got %d", sm.SampleRate())
	}
}

// TestSoundManagerPlay verifies playback either starts or reports an error
func TestSoundManagerPlay(t *testing.T) {
	sm := NewSoundManager()
	defer sm.Cleanup()

	// Note: Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Play(generators.Silence(sm.SampleRate().N(bufferTime)))
	if err != nil {
		t.Logf("Play failed (expected in test environment): %v", err)
		return
	}

	sm.Clear()
}
