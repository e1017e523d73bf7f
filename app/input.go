package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greeting/trigger"
)

// HandleEvent applies one terminal event; false means quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if a.current != nil {
			a.current.doc.Resize(a.screen.Viewport())
		}
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		a.gesture()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (a *App) gesture() {
	if a.current != nil {
		a.current.gesture()
	}
}

// handleMouse turns a button press edge into a click; drags and releases are ignored
func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	fresh := pressed &^ a.buttons
	a.buttons = pressed
	if fresh == 0 {
		return
	}

	a.gesture()
	if a.current == nil {
		return
	}

	x, y := ev.Position()
	click := trigger.Click{
		Point:  a.screen.PointAt(x, y),
		Button: button(fresh),
		Mods:   modifiers(ev.Modifiers()),
	}

	el, ok := a.current.doc.Hit(click.Point)
	if !ok || el.Href == "" {
		return
	}
	if a.current.links.HandleClick(el, click) {
		return
	}
	// Default link behaviour: a primary click follows the link right away
	if click.Button == trigger.ButtonPrimary {
		a.Navigate(el.Href)
	}
}

func button(b tcell.ButtonMask) trigger.Button {
	switch {
	case b&tcell.Button1 != 0:
		return trigger.ButtonPrimary
	case b&tcell.Button3 != 0:
		return trigger.ButtonMiddle
	default:
		return trigger.ButtonSecondary
	}
}

func modifiers(m tcell.ModMask) trigger.Modifiers {
	var out trigger.Modifiers
	if m&tcell.ModShift != 0 {
		out |= trigger.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= trigger.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= trigger.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= trigger.ModMeta
	}
	return out
}
