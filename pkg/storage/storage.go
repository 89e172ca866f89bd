// All files related functions
package storage

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1F3A5/go-gridreel/pkg/config"
)

// Layout is the on-disk tree of one run:
//
//	<output_folder>/<name>/generated_palette.png
//	<output_folder>/<name>/palette.png
//	<output_folder>/<name>/frames/NNNNNNNNN.png
//	<output_folder>/<name>/<name>.gif
//
// One Layout owns its frames dir. Two runs sharing a name and output
// folder race on clearing and numbering.
type Layout struct {
	root string
	name string
}

// NewLayout creates the directory tree, idempotently.
func NewLayout(name, outputFolder string) (*Layout, error) {
	if name == "" {
		return nil, fmt.Errorf("run name is required")
	}
	if outputFolder == "" {
		outputFolder = config.DefaultOutputFolder
	}
	l := &Layout{
		root: filepath.Join(outputFolder, name),
		name: name,
	}
	err := os.MkdirAll(l.FramesDir(), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("Error creating frames dir: %s", err)
	}
	return l, nil
}

func (l *Layout) Root() string {
	return l.root
}

func (l *Layout) FramesDir() string {
	return filepath.Join(l.root, config.DirFrames)
}

// FramePath names one persisted frame. Zero-padded so frames sort
// lexicographically in persist order.
func (l *Layout) FramePath(n int) string {
	return filepath.Join(l.FramesDir(), fmt.Sprintf(config.FramePattern, n))
}

// FramePattern is the printf-style pattern ffmpeg reads frames through.
func (l *Layout) FramePattern() string {
	return filepath.Join(l.FramesDir(), config.FramePattern)
}

func (l *Layout) PalettePreviewPath() string {
	return filepath.Join(l.root, config.FilePalettePreview)
}

func (l *Layout) PalettePath() string {
	return filepath.Join(l.root, config.FilePalette)
}

func (l *Layout) AnimationPath() string {
	return filepath.Join(l.root, l.name+".gif")
}

// ClearFrames removes all frame images, guarding against stale frames
// from a previous run under the same name.
func (l *Layout) ClearFrames() error {
	files, err := os.ReadDir(l.FramesDir())
	if err != nil {
		return fmt.Errorf("Error reading frames dir: %s", err)
	}
	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".png") {
			continue
		}
		err = os.Remove(filepath.Join(l.FramesDir(), file.Name()))
		if err != nil {
			return fmt.Errorf("Error removing frame %s: %s", file.Name(), err)
		}
	}
	return nil
}

// ScanFrames lists persisted frame files in encode order.
func (l *Layout) ScanFrames() ([]string, error) {
	files, err := os.ReadDir(l.FramesDir())
	if err != nil {
		return nil, err
	}
	filesList := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".png") {
			filesList = append(filesList, filepath.Join(l.FramesDir(), file.Name()))
		}
	}
	sort.Strings(filesList)
	return filesList, nil
}

// SavePNG writes an image to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Cannot create file: %s", err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("Cannot encode to file: %s", err)
	}
	return f.Close()
}
