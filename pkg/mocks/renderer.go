package mocks

import (
	"fmt"
	"image"

	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// Renderer is a mock implementation of ports.Renderer.
// Images are looked up by path; unknown paths fail to decode.
type Renderer struct {
	Images map[string]raster.Raster

	DecodeFileFunc func(path string) (raster.Raster, error)
	EncodePNGFunc  func(img image.Image) ([]byte, error)

	// Recorded calls for verification
	DecodeCalls []string
}

// NewRenderer creates a mock Renderer with no known images.
func NewRenderer() *Renderer {
	return &Renderer{Images: make(map[string]raster.Raster)}
}

func (m *Renderer) DecodeFile(path string) (raster.Raster, error) {
	m.DecodeCalls = append(m.DecodeCalls, path)
	if m.DecodeFileFunc != nil {
		return m.DecodeFileFunc(path)
	}
	if img, ok := m.Images[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format")
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ ports.Renderer = (*Renderer)(nil)
