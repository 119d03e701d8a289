package ir

import (
	"image"
	"testing"

	"github.com/Cloudy680/Color-converter/internal/color"
)

func TestSolid(t *testing.T) {
	c := color.RGB{R: 255, G: 0, B: 170}
	img, err := Solid(c, 4, 3)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}
	if len(img.Pixels) != 4*3*3 {
		t.Fatalf("expected %d pixel bytes, got %d", 4*3*3, len(img.Pixels))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAt(x, y); got != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
}

func TestSolidClampsChannels(t *testing.T) {
	img, err := Solid(color.RGB{R: 300, G: -4, B: 12}, 1, 1)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}
	if got := img.RGBAt(0, 0); got != (color.RGB{R: 255, G: 0, B: 12}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestSolidRejectsEmpty(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := Solid(color.White, sz[0], sz[1]); err == nil {
			t.Errorf("Solid(%dx%d) succeeded, want error", sz[0], sz[1])
		}
	}
}

func TestImplementsImage(t *testing.T) {
	var _ image.Image = (*Image)(nil)
	img, _ := Solid(color.White, 2, 2)
	if img.At(5, 5) != color.Black {
		t.Error("out-of-bounds At should be black")
	}
	if img.At(1, 1) != color.White {
		t.Error("in-bounds At should be the fill color")
	}
}
