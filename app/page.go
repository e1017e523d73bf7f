package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/audio"
	"github.com/lixenwraith/greeting/effect"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/scheduler"
	"github.com/lixenwraith/greeting/session"
	"github.com/lixenwraith/greeting/site"
	"github.com/lixenwraith/greeting/trigger"
)

// view is one shown page with the effects mounted on it
type view struct {
	doc      *page.Document
	links    *trigger.LinkHandler
	feathers *effect.FeatherStream
	bubbles  *effect.BubbleStream
	player   *audio.Autoplayer
	retry    *audio.GestureRetry
}

// mount builds a document and starts whatever effects the page carries
func (a *App) mount(name string, layout page.LayoutFunc) *view {
	doc := page.NewDocument(name, a.loop, a.screen.Viewport(), layout)
	env := effect.Env{
		Timers:        a.loop,
		Doc:           doc,
		ReducedMotion: a.cfg.ReducedMotion,
		Rand:          a.rng,
	}

	v := &view{doc: doc}
	v.links = &trigger.LinkHandler{
		Timers:        a.loop,
		Resolve:       resolvable,
		Burster:       effect.NewGlitter(env),
		Store:         a.store,
		Navigator:     trigger.NavigatorFunc(a.Navigate),
		Lifecycle:     doc.Lifecycle,
		ReducedMotion: a.cfg.ReducedMotion,
		Delay:         a.cfg.NavigateDelay,
	}

	switch name {
	case site.GreetingPage:
		v.feathers = effect.NewFeatherStream(env, a.cfg.FeatherInterval, site.BirdLeftID, site.BirdRightID)
		v.feathers.Start()
	case site.GiftPage:
		v.bubbles = effect.NewBubbleStream(env, scheduler.DefaultRamp, site.GiftCardID)
		v.bubbles.Start()
		a.startAudio(v)
	}
	return v
}

// startAudio tries the page track when the previous page left the flag
func (a *App) startAudio(v *view) {
	if !session.ConsumeAudioPending(context.Background(), a.store) {
		return
	}
	if a.output == nil {
		logrus.WithFields(logrus.Fields{
			"function": "startAudio",
			"page":     v.doc.Name,
		}).Debug("Audio requested with no output")
		return
	}

	v.player = audio.NewAutoplayer(a.output, a.track)
	v.retry = audio.NewGestureRetry(v.player)
	v.retry.Attempt()
	v.doc.Lifecycle.OnPageHide(v.player.Stop)
}

// gesture forwards a user gesture to the armed autoplay retry
func (v *view) gesture() {
	if v.retry != nil {
		v.retry.OnGesture()
	}
}

func resolvable(href string) bool {
	_, ok := site.Layout(href)
	return ok
}
