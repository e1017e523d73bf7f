// Package trigger turns pointer clicks on links into a glitter burst followed by a
// deferred navigation, setting the cross-page audio flag on the way.
package trigger

import "github.com/lixenwraith/greeting/core"

// Button identifies the pressed pointer button
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Modifiers is a bitmask of held modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Click is a pointer click in viewport coordinates
type Click struct {
	Point  core.Point
	Button Button
	Mods   Modifiers
}

// Qualifies reports a plain primary click; anything else keeps default link behaviour
func Qualifies(c Click) bool {
	return c.Button == ButtonPrimary && c.Mods == 0
}
