package trigger

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/session"
)

// DefaultNavigateDelay keeps the burst visible before the page unloads
const DefaultNavigateDelay = 420 * time.Millisecond

// Navigator performs the actual page change
type Navigator interface {
	Navigate(href string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(href string)

func (f NavigatorFunc) Navigate(href string) { f(href) }

// Burster plays the click animation; *effect.Glitter satisfies it
type Burster interface {
	Burst(origin core.Point) int
}

// Scheduler defers work on the page loop; *engine.Loop satisfies it
type Scheduler interface {
	SetTimeout(d time.Duration, fn func()) engine.TimerID
	Clear(id engine.TimerID)
}

// Resolver reports whether an href names a destination this site can show
type Resolver func(href string) bool

// LinkHandler intercepts plain clicks on links that resolve
type LinkHandler struct {
	Timers        Scheduler
	Resolve       Resolver
	Burster       Burster
	Store         session.Store
	Navigator     Navigator
	Lifecycle     *page.Lifecycle
	ReducedMotion bool
	Delay         time.Duration

	pending engine.TimerID
}

// HandleClick returns true when it took over navigation
// A false return leaves the click to default behaviour, which is immediate navigation
func (h *LinkHandler) HandleClick(el page.Element, c Click) bool {
	href := strings.TrimSpace(el.Href)
	if !Qualifies(c) || href == "" {
		return false
	}
	// Nil resolves everything
	if h.Resolve != nil && !h.Resolve(href) {
		return false
	}

	// The destination page reads this even if the animation below is skipped
	session.MarkAudioPending(context.Background(), h.Store)

	if h.ReducedMotion || h.Burster == nil {
		return false
	}

	h.Burster.Burst(el.Box.Center())

	if h.pending != 0 {
		return true
	}
	delay := h.Delay
	if delay <= 0 {
		delay = DefaultNavigateDelay
	}
	h.pending = h.Timers.SetTimeout(delay, func() {
		h.pending = 0
		h.Navigator.Navigate(href)
	})
	if h.Lifecycle != nil {
		h.Lifecycle.OnPageHide(h.cancel)
	}

	logrus.WithFields(logrus.Fields{
		"function": "HandleClick",
		"element":  el.ID,
		"href":     href,
		"delay":    delay,
	}).Debug("Navigation deferred for click animation")
	return true
}

// Pending reports whether a deferred navigation is armed
func (h *LinkHandler) Pending() bool {
	return h.pending != 0
}

func (h *LinkHandler) cancel() {
	if h.pending != 0 {
		h.Timers.Clear(h.pending)
		h.pending = 0
	}
}
