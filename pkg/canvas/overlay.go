package canvas

import (
	"fmt"

	"github.com/1F3A5/go-gridreel/pkg/colors"
)

// LineStyle controls polyline overlays. The zero value is not useful,
// start from DefaultLineStyle.
type LineStyle struct {
	Color        colors.Color
	Dashed       bool
	Markers      bool
	Width        float64
	MarkerRadius float64
}

// DefaultLineStyle is a dashed red line with circular markers.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color:        colors.RGBf(1, 0, 0),
		Dashed:       true,
		Markers:      true,
		Width:        2,
		MarkerRadius: 4,
	}
}

// Polyline draws the default-styled line over the current raster.
// Coordinates are grid cell coordinates, x along columns and y along
// rows, anchored at cell centers. Must be called before the canvas is
// persisted.
func (c *Canvas) Polyline(xs, ys []float64) error {
	return c.PolylineStyle(xs, ys, DefaultLineStyle())
}

func (c *Canvas) PolylineStyle(xs, ys []float64, st LineStyle) error {
	if len(xs) == 0 {
		return fmt.Errorf("polyline needs at least one point")
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("polyline coordinate count mismatch: %d x, %d y", len(xs), len(ys))
	}

	c.dc.SetRGB(st.Color.R, st.Color.G, st.Color.B)
	c.dc.SetLineWidth(st.Width)
	if st.Dashed {
		c.dc.SetDash(6, 4)
	}
	for i := range xs {
		px, py := c.toPixel(xs[i], ys[i])
		if i == 0 {
			c.dc.MoveTo(px, py)
		} else {
			c.dc.LineTo(px, py)
		}
	}
	c.dc.Stroke()
	c.dc.SetDash()

	if st.Markers {
		for i := range xs {
			px, py := c.toPixel(xs[i], ys[i])
			c.dc.DrawCircle(px, py, st.MarkerRadius)
			c.dc.Fill()
		}
	}
	return nil
}

func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x + 0.5) * c.cellW, (y + 0.5) * c.cellH
}
