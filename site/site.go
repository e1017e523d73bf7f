// Package site lays out the two greeting pages
package site

import (
	"math"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/page"
)

// Page names double as link targets
const (
	GreetingPage = "index.html"
	GiftPage     = "gift-card.html"
)

// Element ids the effects anchor to
const (
	TitleID     = "title"
	OpenGiftID  = "openGift"
	BirdLeftID  = "birdLeft"
	BirdRightID = "birdRight"
	GiftCardID  = "giftCard"
	BackID      = "back"
)

const (
	birdWidth    = 64.0
	birdHeight   = 32.0
	buttonWidth  = 200.0
	buttonHeight = 48.0
)

// Layout returns the layout for a page name
func Layout(name string) (page.LayoutFunc, bool) {
	switch name {
	case GreetingPage:
		return GreetingLayout, true
	case GiftPage:
		return GiftLayout, true
	default:
		return nil, false
	}
}

// GreetingLayout centres the title and button with a bird at each upper corner
// Bird anchors sit on the beak facing the page centre
func GreetingLayout(vp core.Viewport) []page.Element {
	margin := math.Max(16, vp.Width*0.08)
	titleWidth := math.Min(vp.Width-2*margin, 320)

	return []page.Element{
		{
			ID:    TitleID,
			Box:   core.Rect{Left: (vp.Width - titleWidth) / 2, Top: vp.Height * 0.25, Width: titleWidth, Height: 64},
			Label: "Happy Birthday!",
		},
		{
			ID:     BirdLeftID,
			Box:    core.Rect{Left: margin, Top: vp.Height * 0.1, Width: birdWidth, Height: birdHeight},
			Label:  "(o>",
			Anchor: &core.Point{X: 0.9, Y: 0.4},
		},
		{
			ID:     BirdRightID,
			Box:    core.Rect{Left: vp.Width - margin - birdWidth, Top: vp.Height * 0.1, Width: birdWidth, Height: birdHeight},
			Label:  "<o)",
			Anchor: &core.Point{X: 0.1, Y: 0.4},
		},
		{
			ID:    OpenGiftID,
			Box:   core.Rect{Left: (vp.Width - buttonWidth) / 2, Top: vp.Height * 0.6, Width: buttonWidth, Height: buttonHeight},
			Href:  GiftPage,
			Label: "Open your gift",
		},
	}
}

// GiftLayout centres the card; bubbles rise from its bottom edge
func GiftLayout(vp core.Viewport) []page.Element {
	w := math.Min(vp.Width*0.6, 480)
	h := math.Min(vp.Height*0.5, 320)

	return []page.Element{
		{
			ID:     GiftCardID,
			Box:    core.Rect{Left: (vp.Width - w) / 2, Top: (vp.Height - h) / 2, Width: w, Height: h},
			Label:  "With love, for you",
			Anchor: &core.Point{X: 0.5, Y: 1},
		},
		{
			ID:    BackID,
			Box:   core.Rect{Left: 16, Top: vp.Height - 64, Width: 96, Height: buttonHeight},
			Href:  GreetingPage,
			Label: "Back",
		},
	}
}
