package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/1F3A5/go-gridreel/pkg/colors"
)

func testTable(t *testing.T) colors.Table {
	t.Helper()
	table, err := colors.NewTable(colors.Scheme{
		0: colors.RGB255(255, 255, 255),
		1: colors.RGB255(255, 0, 0),
	})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	return table
}

func TestRasterizeSingleCell(t *testing.T) {
	c, err := Rasterize([][]int{{1}}, testTable(t), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := c.Image()
	b := img.Bounds()
	if b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("canvas size: got %dx%d, want 8x8", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(4, 4).RGBA()
	if r != 0xffff || g != 0 || bl != 0 {
		t.Errorf("center pixel: got (%d,%d,%d), want red", r, g, bl)
	}
}

func TestRasterizeSquareAspect(t *testing.T) {
	// non-square grid still renders onto a square canvas
	grid := [][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	}
	c, err := Rasterize(grid, testTable(t), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := c.Image().Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("got %dx%d, want square", b.Dx(), b.Dy())
	}
}

func TestRasterizeRejectsBadGrids(t *testing.T) {
	testCases := []struct {
		name string
		grid [][]int
	}{
		{"empty", [][]int{}},
		{"empty row", [][]int{{}}},
		{"ragged", [][]int{{0, 1}, {0}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Rasterize(tc.grid, testTable(t), 8); err == nil {
				t.Error("bad grid accepted, want error")
			}
		})
	}
}

func TestPalettePreviewStrip(t *testing.T) {
	table, err := colors.NewTable(colors.Scheme{
		0: colors.RGB255(255, 255, 255),
		3: colors.RGB255(0, 0, 255),
	})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	// two configured entries, preview shows table[0] and table[1]
	c, err := PalettePreview(table, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := c.Image().Bounds()
	if b.Dx() != 2*b.Dy() {
		t.Errorf("strip shape: got %dx%d, want 1x2 cells", b.Dx(), b.Dy())
	}

	if _, err := PalettePreview(table, 0); err == nil {
		t.Error("zero-colour preview accepted, want error")
	}
}

func TestPolyline(t *testing.T) {
	c, err := Rasterize([][]int{{0, 0}, {0, 0}}, testTable(t), 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Polyline([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("polyline: %v", err)
	}
	// the dashed red overlay must land on the raster
	img := c.Image()
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r > 0xf000 && g < 0x0fff && bl < 0x0fff {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no red overlay pixels found")
	}
}

func TestPolylineRejectsBadCoords(t *testing.T) {
	c, err := Rasterize([][]int{{0}}, testTable(t), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Polyline(nil, nil); err == nil {
		t.Error("empty polyline accepted, want error")
	}
	if err := c.Polyline([]float64{0, 1}, []float64{0}); err == nil {
		t.Error("mismatched coords accepted, want error")
	}
}

func TestEncodePNG(t *testing.T) {
	c, err := Rasterize([][]int{{1}}, testTable(t), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not valid png: %v", err)
	}
}
