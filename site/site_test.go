package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/page"
)

func find(t *testing.T, els []page.Element, id string) page.Element {
	t.Helper()
	for _, e := range els {
		if e.ID == id {
			return e
		}
	}
	require.Failf(t, "missing element", "id %s", id)
	return page.Element{}
}

func TestLayoutLookup(t *testing.T) {
	_, ok := Layout(GreetingPage)
	assert.True(t, ok)
	_, ok = Layout(GiftPage)
	assert.True(t, ok)
	_, ok = Layout("missing.html")
	assert.False(t, ok)
}

func TestGreetingLayoutFitsViewport(t *testing.T) {
	for _, vp := range []core.Viewport{{Width: 640, Height: 384}, {Width: 1920, Height: 1080}} {
		els := GreetingLayout(vp)
		for _, e := range els {
			assert.GreaterOrEqual(t, e.Box.Left, 0.0, e.ID)
			assert.LessOrEqual(t, e.Box.Left+e.Box.Width, vp.Width, e.ID)
			assert.LessOrEqual(t, e.Box.Top+e.Box.Height, vp.Height, e.ID)
		}

		btn := find(t, els, OpenGiftID)
		assert.Equal(t, GiftPage, btn.Href)
		assert.InDelta(t, vp.Width/2, btn.Origin().X, 1e-9)

		left := find(t, els, BirdLeftID).Origin()
		right := find(t, els, BirdRightID).Origin()
		assert.Less(t, left.X, vp.Width/2)
		assert.Greater(t, right.X, vp.Width/2)
		assert.Equal(t, left.Y, right.Y)
	}
}

func TestGiftLayoutAnchorsBottomCentre(t *testing.T) {
	vp := core.Viewport{Width: 800, Height: 600}
	card := find(t, GiftLayout(vp), GiftCardID)

	assert.Equal(t, core.Point{X: 400, Y: card.Box.Top + card.Box.Height}, card.Origin())
	assert.Equal(t, GreetingPage, find(t, GiftLayout(vp), BackID).Href)
}
