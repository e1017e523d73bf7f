package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/particle"
)

// Rasterize draws the document at full pixel resolution
// The caller owns the returned context and must Close it
func Rasterize(doc *page.Document, now time.Time) *gg.Context {
	vp := doc.Viewport()
	dc := gg.NewContext(max(int(vp.Width), 1), max(int(vp.Height), 1))
	dc.ClearWithColor(rgba(RgbBackground, 1))

	dc.SetLineWidth(2)
	for _, el := range doc.Elements() {
		c := RgbFrame
		switch {
		case el.Href != "":
			c = RgbLink
		case el.Anchor != nil:
			c = RgbBird
		}
		setColor(dc, c, 1)
		dc.DrawRectangle(el.Box.Left, el.Box.Top, el.Box.Width, el.Box.Height)
		_ = dc.Stroke()
	}

	for _, surface := range doc.Overlay.Surfaces() {
		for _, live := range surface.Live() {
			drawShape(dc, live.Particle, live.Particle.FrameAt(now.Sub(live.Born)))
		}
	}
	return dc
}

// Snapshot rasterises the document and writes it as PNG
func Snapshot(doc *page.Document, now time.Time, path string) error {
	dc := Rasterize(doc, now)
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func drawShape(dc *gg.Context, p particle.Particle, f particle.Frame) {
	if !f.Visible {
		return
	}
	setColor(dc, p.Color, f.Alpha)

	switch p.Kind {
	case particle.KindSpark:
		dc.DrawCircle(f.Pos.X, f.Pos.Y, p.Width/2)
		_ = dc.Fill()
	case particle.KindFeather:
		dc.Push()
		dc.Translate(f.Pos.X, f.Pos.Y)
		dc.Rotate(f.Angle * math.Pi / 180)
		dc.DrawEllipse(0, 0, p.Width/2, p.Height/2)
		_ = dc.Fill()
		dc.Pop()
	case particle.KindBubble:
		dc.DrawCircle(f.Pos.X, f.Pos.Y, p.Width/2)
		_ = dc.FillPreserve()
		setColor(dc, core.RGBWhite, f.Alpha)
		dc.SetLineWidth(1)
		_ = dc.Stroke()
		dc.SetLineWidth(2)
	}
}

func rgba(c core.RGB, alpha float64) gg.RGBA {
	r, g, b := c.Floats()
	return gg.RGBA2(r, g, b, alpha)
}

func setColor(dc *gg.Context, c core.RGB, alpha float64) {
	r, g, b := c.Floats()
	dc.SetRGBA(r, g, b, alpha)
}
