package page

import (
	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/overlay"
)

// LayoutFunc places a page's elements for a viewport
type LayoutFunc func(vp core.Viewport) []Element

// Document is one page: its laid-out elements, overlay root and lifecycle
type Document struct {
	Name      string
	Overlay   *overlay.Root
	Lifecycle *Lifecycle

	viewport core.Viewport
	layout   LayoutFunc
	elements []Element
}

// NewDocument lays out a page and wires overlay teardown to page-hide
func NewDocument(name string, timers overlay.Timers, vp core.Viewport, layout LayoutFunc) *Document {
	d := &Document{
		Name:      name,
		Overlay:   overlay.NewRoot(timers),
		Lifecycle: &Lifecycle{},
		layout:    layout,
	}
	d.Resize(vp)
	d.Lifecycle.OnPageHide(d.Overlay.TeardownAll)
	return d
}

// Viewport returns the current viewport size
func (d *Document) Viewport() core.Viewport {
	return d.viewport
}

// Resize re-runs layout for a new viewport
func (d *Document) Resize(vp core.Viewport) {
	d.viewport = vp
	if d.layout != nil {
		d.elements = d.layout(vp)
	}
}

// Element looks up an element by id; absent elements are not an error
func (d *Document) Element(id string) (Element, bool) {
	for _, e := range d.elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Elements returns elements in paint order
func (d *Document) Elements() []Element {
	return append([]Element(nil), d.elements...)
}

// Hit returns the topmost element containing p
func (d *Document) Hit(p core.Point) (Element, bool) {
	for i := len(d.elements) - 1; i >= 0; i-- {
		if d.elements[i].Box.Contains(p) {
			return d.elements[i], true
		}
	}
	return Element{}, false
}

// PageHide tears the page down once
func (d *Document) PageHide() {
	d.Lifecycle.PageHide()
}
