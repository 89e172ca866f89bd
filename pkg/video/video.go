// call ffmpeg to assemble frames into a palette-optimized gif
package video

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/1F3A5/go-gridreel/pkg/config"
	"github.com/1F3A5/go-gridreel/pkg/logger"
)

var log = logger.Log

// Encoder runs ffmpeg out of process. Exit status is returned to the
// caller, who decides whether a failed run is fatal.
type Encoder struct {
	bin string
}

func NewEncoder(bin string) *Encoder {
	if bin == "" {
		bin = config.EncoderBinary
	}
	return &Encoder{bin: bin}
}

// GeneratePalette derives a reusable colour palette from the static
// palette preview image.
func (e *Encoder) GeneratePalette(ctx context.Context, previewPath, palettePath string) error {
	return e.run(ctx, paletteGenArgs(previewPath, palettePath))
}

// Assemble stitches the persisted frames and the derived palette into
// the final gif at the given framerate. Frames are consumed through
// the zero-padded filename pattern in ascending order.
func (e *Encoder) Assemble(ctx context.Context, framerate float64, framePattern, palettePath, outPath string) error {
	return e.run(ctx, assembleArgs(framerate, framePattern, palettePath, outPath))
}

func (e *Encoder) run(ctx context.Context, args []string) error {
	log.Debugf("Running ffmpeg command: %s %s\n", e.bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, e.bin, args...)
	return cmd.Run()
}

func paletteGenArgs(in, out string) []string {
	return []string{
		"-y", // overwrite existing files
		"-i", in,
		"-vf", "palettegen",
		out,
	}
}

func assembleArgs(framerate float64, pattern, palette, out string) []string {
	return []string{
		"-y",
		"-framerate", strconv.FormatFloat(framerate, 'f', -1, 64),
		"-i", pattern,
		"-i", palette,
		"-filter_complex", "paletteuse",
		out,
	}
}
