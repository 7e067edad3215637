package ports

import (
	"image"

	"github.com/user/framereel/pkg/raster"
)

// ImageDecoder decodes still image files.
type ImageDecoder interface {
	// DecodeFile reads and decodes the image at path.
	// Grayscale files yield *raster.Grayscale, everything else *raster.Color.
	DecodeFile(path string) (raster.Raster, error)
}

// ImageEncoder encodes images for debug output.
type ImageEncoder interface {
	// EncodePNG encodes img as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}

// Renderer combines image decoding and encoding.
type Renderer interface {
	ImageDecoder
	ImageEncoder
}
