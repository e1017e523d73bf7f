// Package app runs the greeting pages on a terminal: it owns the event loop, the
// current page and the translation of terminal input into page clicks
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/audio"
	"github.com/lixenwraith/greeting/config"
	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/particle"
	"github.com/lixenwraith/greeting/render"
	"github.com/lixenwraith/greeting/session"
	"github.com/lixenwraith/greeting/site"
)

// FrameInterval is the redraw cadence
const FrameInterval = 33 * time.Millisecond

// ErrUnknownPage is returned when a link or the startup page has no layout
var ErrUnknownPage = errors.New("unknown page")

// Deps are the collaborators an App runs with; Clock, Output and Rand are optional
type Deps struct {
	Screen tcell.Screen
	Clock  engine.TimeProvider
	Store  session.Store
	Output audio.RateOutput
	Track  audio.Track
	Rand   *rand.Rand
}

// App drives the pages; all state is touched only from the loop goroutine
type App struct {
	cfg    config.Config
	loop   *engine.Loop
	term   tcell.Screen
	screen *render.Screen
	store  session.Store
	output audio.RateOutput
	track  audio.Track
	rng    *rand.Rand

	current *view
	buttons tcell.ButtonMask
}

// New creates an App; the screen must already be initialised
func New(cfg config.Config, deps Deps) *App {
	clock := deps.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	rng := deps.Rand
	if rng == nil {
		rng = particle.NewRand()
	}
	track := deps.Track
	if track == nil {
		track = audio.Chime{}
	}
	return &App{
		cfg:    cfg,
		loop:   engine.NewLoop(clock),
		term:   deps.Screen,
		screen: render.NewScreen(deps.Screen, cfg.CellWidth, cfg.CellHeight),
		store:  deps.Store,
		output: deps.Output,
		track:  track,
		rng:    rng,
	}
}

// Loop exposes the event loop for posting work and driving it in tests
func (a *App) Loop() *engine.Loop {
	return a.loop
}

// Document returns the page currently shown, nil before Open
func (a *App) Document() *page.Document {
	if a.current == nil {
		return nil
	}
	return a.current.doc
}

// Open shows a page without hiding the current one; used at startup
func (a *App) Open(name string) error {
	layout, ok := site.Layout(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}
	a.current = a.mount(name, layout)

	logrus.WithFields(logrus.Fields{
		"function": "Open",
		"page":     name,
	}).Info("Page shown")
	return nil
}

// Navigate hides the current page and shows href
// Unknown targets are logged and leave the current page running
func (a *App) Navigate(href string) {
	layout, ok := site.Layout(href)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function": "Navigate",
			"href":     href,
		}).Warn("Navigation to unknown page ignored")
		return
	}
	if a.current != nil {
		a.current.doc.PageHide()
	}
	a.current = a.mount(href, layout)

	logrus.WithFields(logrus.Fields{
		"function": "Navigate",
		"page":     href,
	}).Info("Page shown")
}

// Frame draws the current page
func (a *App) Frame() {
	if a.current == nil {
		return
	}
	a.screen.Draw(a.current.doc, a.loop.Now())
}

// Close hides the current page, tearing down its effects and audio
func (a *App) Close() {
	if a.current != nil {
		a.current.doc.PageHide()
	}
}

// Snapshot writes the current page to a PNG file
func (a *App) Snapshot(path string) error {
	if a.current == nil {
		return fmt.Errorf("snapshot: %w", ErrUnknownPage)
	}
	return render.Snapshot(a.current.doc, a.loop.Now(), path)
}

// Run shows the configured page and drives the loop until ctx ends or the user quits
// Terminal events are polled on their own goroutine and posted into the loop
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.Open(a.cfg.Page); err != nil {
		return err
	}
	defer a.Close()

	a.term.EnableMouse()
	a.Frame()
	frames := a.loop.SetInterval(FrameInterval, a.Frame)
	defer a.loop.Clear(frames)

	core.Go(func() {
		for {
			ev := a.term.PollEvent()
			if ev == nil {
				return
			}
			a.loop.Post(func() {
				if !a.HandleEvent(ev) {
					cancel()
				}
			})
		}
	})

	err := a.loop.Run(ctx)
	// Capture before the deferred Close tears the particles down
	a.writeSnapshot()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// writeSnapshot saves the last frame when a snapshot path is configured
func (a *App) writeSnapshot() {
	if a.cfg.Snapshot == "" {
		return
	}
	if err := a.Snapshot(a.cfg.Snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Run",
			"path":     a.cfg.Snapshot,
		}).WithError(err).Warn("Snapshot not written")
	}
}
