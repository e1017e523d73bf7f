package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/particle"
)

// Default cell size in viewport pixels
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Screen draws a document onto a terminal
// Viewport pixels map onto cells of cellW x cellH
type Screen struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	bg     tcell.Style
}

// NewScreen wraps an initialised tcell screen
func NewScreen(screen tcell.Screen, cellW, cellH int) *Screen {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Screen{
		screen: screen,
		cellW:  float64(cellW),
		cellH:  float64(cellH),
		bg:     tcell.StyleDefault.Background(Color(RgbBackground)).Foreground(Color(RgbLabel)),
	}
}

// Viewport returns the terminal size in viewport pixels
func (s *Screen) Viewport() core.Viewport {
	w, h := s.screen.Size()
	return core.Viewport{Width: float64(w) * s.cellW, Height: float64(h) * s.cellH}
}

// PointAt converts a cell to the viewport point at its centre
func (s *Screen) PointAt(x, y int) core.Point {
	return core.Point{X: (float64(x) + 0.5) * s.cellW, Y: (float64(y) + 0.5) * s.cellH}
}

// CellAt converts a viewport point to the cell containing it
func (s *Screen) CellAt(p core.Point) (int, int) {
	return floorDiv(p.X, s.cellW), floorDiv(p.Y, s.cellH)
}

func floorDiv(v, cell float64) int {
	c := int(v / cell)
	if v < 0 && float64(c)*cell != v {
		c--
	}
	return c
}

// Draw paints the document elements, then every surface's live particles, and shows the frame
func (s *Screen) Draw(doc *page.Document, now time.Time) {
	s.screen.SetStyle(s.bg)
	s.screen.Clear()

	for _, el := range doc.Elements() {
		s.drawElement(el)
	}
	for _, surface := range doc.Overlay.Surfaces() {
		for _, live := range surface.Live() {
			s.drawParticle(live.Particle, now.Sub(live.Born))
		}
	}
	s.screen.Show()
}

func (s *Screen) drawElement(el page.Element) {
	x0, y0 := s.CellAt(core.Point{X: el.Box.Left, Y: el.Box.Top})
	x1, y1 := s.CellAt(core.Point{X: el.Box.Left + el.Box.Width - 1, Y: el.Box.Top + el.Box.Height - 1})

	frame := s.bg.Foreground(Color(RgbFrame))
	label := s.bg
	switch {
	case el.Href != "":
		frame = s.bg.Foreground(Color(RgbLink))
		label = s.bg.Foreground(Color(RgbLink)).Bold(true)
	case el.Anchor != nil:
		label = s.bg.Foreground(Color(RgbBird))
	}

	if y1-y0 >= 2 && x1-x0 >= 2 {
		s.box(x0, y0, x1, y1, frame)
	}
	if el.Label != "" {
		runes := []rune(el.Label)
		cx := (x0+x1+1)/2 - len(runes)/2
		cy := (y0 + y1) / 2
		for i, r := range runes {
			s.screen.SetContent(cx+i, cy, r, nil, label)
		}
	}
}

func (s *Screen) box(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (s *Screen) drawParticle(p particle.Particle, age time.Duration) {
	f := p.FrameAt(age)
	if !f.Visible {
		return
	}
	x, y := s.CellAt(f.Pos)
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	s.screen.SetContent(x, y, Glyph(p, f), nil, s.bg.Foreground(Faded(p.Color, f.Alpha)))
}
