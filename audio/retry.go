package audio

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var errNoOutput = errors.New("no audio output")

// GestureRetry wraps a Starter with a one-time retry on the next user gesture
type GestureRetry struct {
	starter Starter

	mu    sync.Mutex
	armed bool
}

// NewGestureRetry wraps starter
func NewGestureRetry(starter Starter) *GestureRetry {
	return &GestureRetry{starter: starter}
}

// Attempt starts playback and arms the retry if it was blocked
func (g *GestureRetry) Attempt() Result {
	r := g.starter.Start()

	g.mu.Lock()
	g.armed = !r.Started()
	g.mu.Unlock()
	return r
}

// OnGesture fires the armed retry once; false when nothing was armed
func (g *GestureRetry) OnGesture() (Result, bool) {
	g.mu.Lock()
	if !g.armed {
		g.mu.Unlock()
		return Result{}, false
	}
	g.armed = false
	g.mu.Unlock()

	r := g.starter.Start()
	logrus.WithFields(logrus.Fields{
		"function": "OnGesture",
		"status":   r.Status.String(),
	}).Debug("Autoplay retried on gesture")
	return r, true
}

// Armed reports whether a retry is waiting for a gesture
func (g *GestureRetry) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}
