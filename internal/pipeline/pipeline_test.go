package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/export"
	"github.com/Cloudy680/Color-converter/internal/ir"
)

// stripe returns a 1-pixel-high image with one pixel per color.
func stripe(colors ...color.RGB) *ir.Image {
	img := &ir.Image{Width: len(colors), Height: 1}
	for _, c := range colors {
		img.Pixels = append(img.Pixels, byte(c.R), byte(c.G), byte(c.B))
	}
	return img
}

var primaries = []color.RGB{
	{R: 255}, {G: 255}, {B: 255}, color.White, color.Black, {R: 128, G: 128, B: 128},
}

func encoded(t *testing.T, img *ir.Image, format export.Format) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, format, export.EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return &buf
}

func TestSeparate(t *testing.T) {
	res, err := Separate(encoded(t, stripe(primaries...), export.PNG))
	if err != nil {
		t.Fatalf("Separate: %v", err)
	}
	if res.Width != 6 || res.Height != 1 || res.SrcFormat != "png" {
		t.Fatalf("result = %dx%d %s", res.Width, res.Height, res.SrcFormat)
	}
	want := []byte{
		0, 255, 255, 0, // red
		255, 0, 255, 0, // green
		255, 255, 0, 0, // blue
		0, 0, 0, 0, // white
		0, 0, 0, 255, // black
		0, 0, 0, 127, // gray
	}
	if diff := cmp.Diff(want, res.Pixels); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
	if res.Coverage[Key] <= 0 || res.Coverage[Cyan] != 2.0/6 {
		t.Errorf("coverage = %v", res.Coverage)
	}
}

func TestSeparateIsPerPixel(t *testing.T) {
	colors := []color.RGB{{R: 10, G: 200, B: 77}, {R: 255, G: 128}, {B: 3}, {R: 90, G: 90, B: 91}}
	whole, err := Separate(encoded(t, stripe(colors...), export.PPM))
	if err != nil {
		t.Fatalf("Separate: %v", err)
	}

	var want []byte
	for _, c := range colors {
		one, err := Separate(encoded(t, stripe(c), export.PPM))
		if err != nil {
			t.Fatalf("Separate(%v): %v", c, err)
		}
		cmyk, _ := c.CMYK()
		direct := []byte{sample(cmyk.C), sample(cmyk.M), sample(cmyk.Y), sample(cmyk.K)}
		if diff := cmp.Diff(direct, one.Pixels); diff != "" {
			t.Errorf("%v: single pixel differs from RGBToCMYK (-want +got):\n%s", c, diff)
		}
		want = append(want, one.Pixels...)
	}
	if diff := cmp.Diff(want, whole.Pixels); diff != "" {
		t.Errorf("pixel depends on its neighbours (-want +got):\n%s", diff)
	}
}

func TestSeparateRejectsGarbage(t *testing.T) {
	if _, err := Separate(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPlate(t *testing.T) {
	res, err := Separate(encoded(t, stripe(color.RGB{R: 255}, color.White), export.PPM))
	if err != nil {
		t.Fatal(err)
	}
	m, err := res.Plate(Magenta)
	if err != nil {
		t.Fatal(err)
	}
	// Full magenta ink on the red pixel prints black; white has no ink.
	if m.Pix[0] != 0 || m.Pix[1] != 255 {
		t.Errorf("magenta plate = %v", m.Pix)
	}
	if _, err := res.Plate(4); err == nil {
		t.Error("Plate(4) should fail")
	}
}

func TestComposeRoundTrip(t *testing.T) {
	src := stripe(primaries...)
	res, err := Separate(encoded(t, src, export.BMP))
	if err != nil {
		t.Fatal(err)
	}
	img, err := Compose(res.Pixels, res.Width, res.Height)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Pixels, src.Pixels) {
		t.Errorf("round trip = %v, want %v", img.Pixels, src.Pixels)
	}
}

func TestComposeSizeMismatch(t *testing.T) {
	if _, err := Compose(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := Compose(nil, 0, 1); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestRawSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.raw")
	res := &Result{Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8}, Width: 2, Height: 1}

	metaPath, err := WriteRaw(path, res)
	if err != nil {
		t.Fatal(err)
	}
	if metaPath != filepath.Join(dir, "out.json") {
		t.Errorf("sidecar path = %s", metaPath)
	}

	meta, err := ReadMeta(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Meta{Width: 2, Height: 1, Format: RawFormat}, meta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(metaPath, []byte(`{"width":2,"height":1,"format":"RGB8"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadMeta(path); err == nil {
		t.Error("expected format error")
	}
}
