package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
)

// Status is the outcome of a playback start request
type Status uint8

const (
	StatusStarted Status = iota
	StatusBlocked
)

func (s Status) String() string {
	if s == StatusStarted {
		return "started"
	}
	return "blocked"
}

// Result reports whether playback began; Err explains a block
type Result struct {
	Status Status
	Err    error
}

// Started reports successful playback
func (r Result) Started() bool {
	return r.Status == StatusStarted
}

// Starter begins playback; failures come back as a Blocked result, never a panic
type Starter interface {
	Start() Result
}

// RateOutput is an output that dictates the stream sample rate
type RateOutput interface {
	Output
	SampleRate() beep.SampleRate
}

// Autoplayer starts a page's track on an output
type Autoplayer struct {
	out   RateOutput
	track Track

	mu      sync.Mutex
	playing bool
}

// NewAutoplayer binds track to out
func NewAutoplayer(out RateOutput, track Track) *Autoplayer {
	return &Autoplayer{out: out, track: track}
}

// Start opens the track and hands it to the output
// A second Start while playing reports Started without restarting
func (a *Autoplayer) Start() Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.playing {
		return Result{Status: StatusStarted}
	}
	if a.out == nil || a.track == nil {
		return a.blocked(errNoOutput)
	}

	stream, err := a.track.Open(a.out.SampleRate())
	if err != nil {
		return a.blocked(err)
	}
	if err := a.out.Play(stream); err != nil {
		return a.blocked(err)
	}

	a.playing = true
	logrus.WithFields(logrus.Fields{
		"function": "Start",
	}).Info("Track playback started")
	return Result{Status: StatusStarted}
}

// Stop silences the output
func (a *Autoplayer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.playing {
		return
	}
	a.playing = false
	a.out.Clear()
}

// Playing reports whether the track was started and not stopped
func (a *Autoplayer) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

func (a *Autoplayer) blocked(err error) Result {
	logrus.WithFields(logrus.Fields{
		"function": "Start",
		"error":    err,
	}).Warn("Autoplay blocked")
	return Result{Status: StatusBlocked, Err: err}
}
