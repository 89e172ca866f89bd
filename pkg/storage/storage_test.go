package storage

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLayoutCreatesTree(t *testing.T) {
	out := t.TempDir()
	l, err := NewLayout("run", out)
	require.NoError(t, err)

	info, err := os.Stat(l.FramesDir())
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// idempotent
	_, err = NewLayout("run", out)
	require.NoError(t, err)
}

func TestNewLayoutRequiresName(t *testing.T) {
	_, err := NewLayout("", t.TempDir())
	require.Error(t, err)
}

func TestLayoutPaths(t *testing.T) {
	l, err := NewLayout("run", t.TempDir())
	require.NoError(t, err)

	require.Equal(t, filepath.Join(l.Root(), "generated_palette.png"), l.PalettePreviewPath())
	require.Equal(t, filepath.Join(l.Root(), "palette.png"), l.PalettePath())
	require.Equal(t, filepath.Join(l.Root(), "run.gif"), l.AnimationPath())
	require.Equal(t, filepath.Join(l.FramesDir(), "000000001.png"), l.FramePath(1))
	require.Equal(t, filepath.Join(l.FramesDir(), "000123456.png"), l.FramePath(123456))
	require.Equal(t, filepath.Join(l.FramesDir(), "%09d.png"), l.FramePattern())
}

func TestFramePathsSortInOrder(t *testing.T) {
	l, err := NewLayout("run", t.TempDir())
	require.NoError(t, err)

	paths := []string{}
	for _, n := range []int{1, 2, 9, 10, 11, 99, 100, 999999999} {
		paths = append(paths, l.FramePath(n))
	}
	require.True(t, sort.StringsAreSorted(paths))
}

func TestClearFrames(t *testing.T) {
	l, err := NewLayout("run", t.TempDir())
	require.NoError(t, err)

	for n := 1; n <= 3; n++ {
		require.NoError(t, SavePNG(l.FramePath(n), image.NewNRGBA(image.Rect(0, 0, 1, 1))))
	}
	// a non-frame file survives clearing
	keep := filepath.Join(l.FramesDir(), "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	require.NoError(t, l.ClearFrames())

	frames, err := l.ScanFrames()
	require.NoError(t, err)
	require.Empty(t, frames)
	_, err = os.Stat(keep)
	require.NoError(t, err)
}

func TestScanFramesSorted(t *testing.T) {
	l, err := NewLayout("run", t.TempDir())
	require.NoError(t, err)

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, SavePNG(l.FramePath(n), image.NewNRGBA(image.Rect(0, 0, 1, 1))))
	}
	frames, err := l.ScanFrames()
	require.NoError(t, err)
	require.Equal(t, []string{l.FramePath(1), l.FramePath(2), l.FramePath(3)}, frames)
}
