package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"

	"github.com/user/framereel/pkg/raster"
)

func TestRenderer_DecodeFile_PNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")

	dc := gg.NewContext(40, 30)
	dc.SetRGB(1, 0, 0)
	dc.Clear()
	if err := dc.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	r := New()
	img, err := r.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	w, h := img.Size()
	if w != 40 || h != 30 {
		t.Errorf("expected 40x30, got %dx%d", w, h)
	}

	c := raster.Canonicalize(img)
	if c.Pix[0] != 255 || c.Pix[1] != 0 || c.Pix[2] != 0 {
		t.Errorf("expected red pixel, got %v", c.Pix[:3])
	}
}

func TestRenderer_DecodeFile_Grayscale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")

	gray := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range gray.Pix {
		gray.Pix[i] = 128
	}
	writePNG(t, path, gray)

	img, err := New().DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	if img.NumChannels() != 1 {
		t.Errorf("expected single channel raster, got %d channels", img.NumChannels())
	}
	if _, ok := img.(*raster.Grayscale); !ok {
		t.Errorf("expected *raster.Grayscale, got %T", img)
	}
}

func TestRenderer_DecodeFile_BMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blue.bmp")

	src := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := New().DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	c := raster.Canonicalize(img)
	if c.Width != 6 || c.Height != 4 {
		t.Errorf("expected 6x4, got %dx%d", c.Width, c.Height)
	}
	if c.Pix[2] != 255 {
		t.Errorf("expected blue pixel, got %v", c.Pix[:3])
	}
}

func TestRenderer_DecodeFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New().DecodeFile(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestRenderer_DecodeFile_Missing(t *testing.T) {
	if _, err := New().DecodeFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	src := raster.NewColor(10, 5, 3)

	data, err := New().EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("expected 10x5, got %dx%d", b.Dx(), b.Dy())
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
