package video

import (
	"context"
	"reflect"
	"testing"
)

func TestPaletteGenArgs(t *testing.T) {
	got := paletteGenArgs("out/run/generated_palette.png", "out/run/palette.png")
	want := []string{
		"-y",
		"-i", "out/run/generated_palette.png",
		"-vf", "palettegen",
		"out/run/palette.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleArgs(t *testing.T) {
	testCases := []struct {
		name     string
		rate     float64
		wantRate string
	}{
		{"integer rate", 10, "10"},
		{"fractional rate", 12.5, "12.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := assembleArgs(tc.rate, "out/run/frames/%09d.png", "out/run/palette.png", "out/run/run.gif")
			want := []string{
				"-y",
				"-framerate", tc.wantRate,
				"-i", "out/run/frames/%09d.png",
				"-i", "out/run/palette.png",
				"-filter_complex", "paletteuse",
				"out/run/run.gif",
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestMissingBinaryReportsError(t *testing.T) {
	e := NewEncoder("gridreel-no-such-encoder")
	if err := e.GeneratePalette(context.Background(), "a.png", "b.png"); err == nil {
		t.Error("missing binary: want error, got nil")
	}
}

func TestNewEncoderDefaultsBinary(t *testing.T) {
	e := NewEncoder("")
	if e.bin != "ffmpeg" {
		t.Errorf("got %q, want ffmpeg", e.bin)
	}
}
