// Colour scheme and lookup table for grid cell values
package colors

import (
	"fmt"
)

// Color is an RGB triple with components normalized to [0,1].
type Color struct {
	R, G, B float64
}

// RGB255 builds a Color from 0-255 components, dividing each by 255.
func RGB255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// RGBf passes already-normalized components through unchanged.
func RGBf(r, g, b float64) Color {
	return Color{r, g, b}
}

// Gray maps a single normalized scalar to a gray Color, unchanged.
func Gray(v float64) Color {
	return Color{v, v, v}
}

var Black = Color{0, 0, 0}

// Scheme maps a non-negative cell value to its display colour.
// Keys may be sparse, values are normalized before table build.
type Scheme map[int]Color

// Default returns a fresh single-entry scheme mapping 0 to black.
// Always a new map, never a shared instance.
func Default() Scheme {
	return Scheme{0: Black}
}

// Table is a dense colour lookup indexed by cell value, from 0 to the
// highest configured key. Built once, never mutated. Indexing beyond
// len(t)-1 is a caller error.
type Table []Color

// NewTable builds the dense table from a scheme. Any value in range
// that the scheme does not configure resolves to black. A scheme with
// at least one entry is a precondition, an empty one is rejected here
// instead of producing a zero-length table.
func NewTable(s Scheme) (Table, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("colour scheme is empty, need at least one entry")
	}
	maxKey := 0
	for k := range s {
		if k < 0 {
			return nil, fmt.Errorf("colour scheme key %d is negative, cell values start at 0", k)
		}
		if k > maxKey {
			maxKey = k
		}
	}
	t := make(Table, maxKey+1)
	for k, c := range s {
		t[k] = c
	}
	return t, nil
}
