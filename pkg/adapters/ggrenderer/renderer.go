// Package ggrenderer provides image decoding and encoding using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// DecodeFile loads a JPEG, PNG or BMP file and converts it into a raster.
// Grayscale sources keep a single channel.
func (r *Renderer) DecodeFile(path string) (raster.Raster, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return raster.FromImage(img), nil
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
