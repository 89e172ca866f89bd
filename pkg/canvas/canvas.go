// Drawing context for grid frames.
//
// A Canvas is an owned, in-memory raster. Rasterize produces one per
// frame, overlays draw onto it, and the caller persists it. No global
// drawing state is shared between frames.
package canvas

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/1F3A5/go-gridreel/pkg/colors"
	"github.com/1F3A5/go-gridreel/pkg/config"
)

type Canvas struct {
	dc    *gg.Context
	cellW float64
	cellH float64
}

// Rasterize draws a 2D grid of cell values onto a fresh square canvas,
// size x size pixels, one filled rectangle per cell. Cell values index
// the colour table directly, values outside the table range are a
// caller error.
func Rasterize(grid [][]int, table colors.Table, size int) (*Canvas, error) {
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged grid: row %d has %d cells, want %d", i, len(row), cols)
		}
	}
	if size <= 0 {
		size = config.DefaultCanvasSize
	}

	dc := gg.NewContext(size, size)
	cellW := float64(size) / float64(cols)
	cellH := float64(size) / float64(rows)
	for y, row := range grid {
		for x, cell := range row {
			c := table[cell]
			dc.SetRGB(c.R, c.G, c.B)
			// overdraw half a pixel to avoid seams between cells
			dc.DrawRectangle(float64(x)*cellW, float64(y)*cellH, cellW+0.5, cellH+0.5)
			dc.Fill()
		}
	}
	return &Canvas{dc: dc, cellW: cellW, cellH: cellH}, nil
}

// PalettePreview renders a 1xN strip of the first n table entries in
// value order. n is the number of configured scheme entries, which for
// sparse schemes is not the table length.
func PalettePreview(table colors.Table, n int) (*Canvas, error) {
	if n <= 0 {
		return nil, fmt.Errorf("preview needs at least one colour")
	}
	if n > len(table) {
		n = len(table)
	}
	cell := float64(config.PreviewCellSize)
	dc := gg.NewContext(n*config.PreviewCellSize, config.PreviewCellSize)
	for i := 0; i < n; i++ {
		c := table[i]
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawRectangle(float64(i)*cell, 0, cell+0.5, cell)
		dc.Fill()
	}
	return &Canvas{dc: dc, cellW: cell, cellH: cell}, nil
}

// Image returns the current raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the current raster as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
