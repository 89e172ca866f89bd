package core

import (
	"context"
	"fmt"
	"time"

	"github.com/1F3A5/go-gridreel/pkg/canvas"
	"github.com/1F3A5/go-gridreel/pkg/colors"
	"github.com/1F3A5/go-gridreel/pkg/config"
	p "github.com/1F3A5/go-gridreel/pkg/core/progress"
	"github.com/1F3A5/go-gridreel/pkg/logger"
	"github.com/1F3A5/go-gridreel/pkg/storage"
	"github.com/1F3A5/go-gridreel/pkg/video"
)

var log = logger.Log

// Renderer turns a sequence of integer grids into numbered frame
// images on disk and assembles them into an animated gif. Meant for
// single-threaded sequential use: draw a frame, optionally overlay,
// persist, repeat, then finalize once.
type Renderer struct {
	name       string
	table      colors.Table
	nColors    int
	layout     *storage.Layout
	enc        *video.Encoder
	size       int
	strict     bool
	frameCount int
}

type options struct {
	outputFolder string
	encoderBin   string
	canvasSize   int
	strict       bool
}

type Option func(*options)

// WithOutputFolder overrides the default "visualisations" root.
func WithOutputFolder(dir string) Option {
	return func(o *options) { o.outputFolder = dir }
}

// WithEncoderBinary overrides the ffmpeg binary name or path.
func WithEncoderBinary(bin string) Option {
	return func(o *options) { o.encoderBin = bin }
}

// WithCanvasSize sets the square frame size in pixels.
func WithCanvasSize(px int) Option {
	return func(o *options) { o.canvasSize = px }
}

// WithStrictEncoder makes Finalize return ffmpeg failures instead of
// logging and carrying on.
func WithStrictEncoder() Option {
	return func(o *options) { o.strict = true }
}

// New prepares the output tree for a run: creates the directories,
// clears frames left over by a previous run under the same name,
// builds the colour table and writes the palette preview image.
//
// A nil scheme defaults to a fresh {0: black}. An empty non-nil
// scheme is rejected.
func New(name string, scheme colors.Scheme, opts ...Option) (*Renderer, error) {
	if scheme == nil {
		scheme = colors.Default()
	}
	table, err := colors.NewTable(scheme)
	if err != nil {
		return nil, err
	}

	o := options{
		outputFolder: config.DefaultOutputFolder,
		canvasSize:   config.DefaultCanvasSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	layout, err := storage.NewLayout(name, o.outputFolder)
	if err != nil {
		return nil, err
	}
	if err := layout.ClearFrames(); err != nil {
		return nil, err
	}

	r := &Renderer{
		name:       name,
		table:      table,
		nColors:    len(scheme),
		layout:     layout,
		enc:        video.NewEncoder(o.encoderBin),
		size:       o.canvasSize,
		strict:     o.strict,
		frameCount: 1,
	}
	if err := r.writePalettePreview(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) writePalettePreview() error {
	c, err := canvas.PalettePreview(r.table, r.nColors)
	if err != nil {
		return err
	}
	return storage.SavePNG(r.layout.PalettePreviewPath(), c.Image())
}

// DrawFrame rasterizes one grid onto a fresh owned canvas. The caller
// may draw overlays on it before handing it to Persist. The grid is
// not retained.
func (r *Renderer) DrawFrame(grid [][]int) (*canvas.Canvas, error) {
	return canvas.Rasterize(grid, r.table, r.size)
}

// Persist saves the canvas under the next frame number.
func (r *Renderer) Persist(c *canvas.Canvas) error {
	path := r.layout.FramePath(r.frameCount)
	if err := storage.SavePNG(path, c.Image()); err != nil {
		return err
	}
	log.Debugf("Saved frame %s\n", path)
	r.frameCount++
	return nil
}

// FrameCount is the number the next persisted frame will get, 1-based.
func (r *Renderer) FrameCount() int {
	return r.frameCount
}

// Layout exposes the output paths of this run.
func (r *Renderer) Layout() *storage.Layout {
	return r.layout
}

// Finalize runs ffmpeg twice: derive a palette from the preview image,
// then assemble all persisted frames with it into <name>.gif. Unless
// the renderer was built with WithStrictEncoder, an ffmpeg failure is
// logged and swallowed so batch runs keep going without the encoder
// installed. Frames are cleared afterwards when clearFrames is set.
func (r *Renderer) Finalize(ctx context.Context, framerate float64, clearFrames bool) error {
	if framerate <= 0 {
		framerate = config.DefaultFramerate
	}

	// spinner while ffmpeg runs, long runs take a while
	p.ProgressSpinner("Assembling gif... ")
	done := make(chan bool)
	go func(done <-chan bool) {
		ticker := time.NewTicker(time.Millisecond * 300)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Add(1) // spin
			case <-done:
				return
			}
		}
	}(done)

	err := r.enc.GeneratePalette(ctx, r.layout.PalettePreviewPath(), r.layout.PalettePath())
	if err == nil {
		err = r.enc.Assemble(ctx, framerate, r.layout.FramePattern(), r.layout.PalettePath(), r.layout.AnimationPath())
	}
	done <- true
	p.Finish()

	if err != nil {
		if r.strict {
			return fmt.Errorf("Error assembling animation: %s", err)
		}
		log.Warnf("ffmpeg failed, %s may be missing or incomplete: %s\n", r.layout.AnimationPath(), err)
	}

	if clearFrames {
		if err := r.layout.ClearFrames(); err != nil {
			return err
		}
	}
	return nil
}
