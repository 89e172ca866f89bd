package config

const (
	// Output layout, relative to <output_folder>/<name>/
	DirFrames          = "frames"
	FilePalettePreview = "generated_palette.png"
	FilePalette        = "palette.png"

	// Frame files are 1-indexed and zero-padded so they sort
	// lexicographically in persist order. ffmpeg consumes them
	// through the same pattern.
	FramePadWidth = 9
	FramePattern  = "%09d.png"

	// Defaults
	DefaultOutputFolder = "visualisations"
	DefaultFramerate    = 10
	DefaultCanvasSize   = 800

	// Palette preview strip, one cell per configured colour
	PreviewCellSize = 64

	EncoderBinary = "ffmpeg"
)
