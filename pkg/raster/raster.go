// Package raster defines the in-memory image model used between decoding
// and encoding.
//
// A decoded file is either a Grayscale raster or a Color raster with three
// or four interleaved channels. Canonicalize turns either variant into the
// single format the rest of the pipeline works with: a three-channel Color.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Raster is implemented by Grayscale and Color.
type Raster interface {
	// Size returns the raster width and height in pixels.
	Size() (width, height int)

	// NumChannels returns 1 for grayscale, 3 or 4 for color.
	NumChannels() int

	isRaster()
}

// Grayscale is a single-channel raster with one byte per pixel.
type Grayscale struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrayscale allocates a black grayscale raster.
func NewGrayscale(width, height int) *Grayscale {
	return &Grayscale{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Size returns the raster dimensions.
func (g *Grayscale) Size() (int, int) { return g.Width, g.Height }

// NumChannels returns 1.
func (g *Grayscale) NumChannels() int { return 1 }

func (g *Grayscale) isRaster() {}

// Color is an interleaved RGB or RGBA raster. Alpha, when present, is not
// premultiplied.
type Color struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewColor allocates a zeroed color raster with the given channel count.
func NewColor(width, height, channels int) *Color {
	return &Color{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Size returns the raster dimensions.
func (c *Color) Size() (int, int) { return c.Width, c.Height }

// NumChannels returns the number of interleaved channels.
func (c *Color) NumChannels() int { return c.Channels }

func (c *Color) isRaster() {}

// Clone returns a deep copy of c.
func (c *Color) Clone() *Color {
	dup := &Color{
		Width:    c.Width,
		Height:   c.Height,
		Channels: c.Channels,
		Pix:      make([]uint8, len(c.Pix)),
	}
	copy(dup.Pix, c.Pix)
	return dup
}

// Equal reports whether both rasters have the same shape and pixels.
func (c *Color) Equal(o *Color) bool {
	if c.Width != o.Width || c.Height != o.Height || c.Channels != o.Channels {
		return false
	}
	if len(c.Pix) != len(o.Pix) {
		return false
	}
	for i := range c.Pix {
		if c.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (c *Color) ColorModel() color.Model {
	if c.Channels == 4 {
		return color.NRGBAModel
	}
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Color) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// At implements image.Image.
func (c *Color) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{}
	}
	i := (y*c.Width + x) * c.Channels
	if c.Channels == 4 {
		return color.NRGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: c.Pix[i+3]}
	}
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: 255}
}

// Opaque reports whether the raster has no transparency channel.
func (c *Color) Opaque() bool {
	return c.Channels != 4
}

// ToRGBA converts the raster to an *image.RGBA, dropping any alpha.
func (c *Color) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(c.Bounds())
	n := c.Width * c.Height
	for p := 0; p < n; p++ {
		s := p * c.Channels
		d := p * 4
		dst.Pix[d] = c.Pix[s]
		dst.Pix[d+1] = c.Pix[s+1]
		dst.Pix[d+2] = c.Pix[s+2]
		dst.Pix[d+3] = 255
	}
	return dst
}

// Canonicalize converts any raster to a freshly allocated three-channel
// Color. Gray values are replicated into R, G and B; a fourth channel is
// dropped.
func Canonicalize(r Raster) *Color {
	switch src := r.(type) {
	case *Grayscale:
		dst := NewColor(src.Width, src.Height, 3)
		for p, v := range src.Pix {
			dst.Pix[p*3] = v
			dst.Pix[p*3+1] = v
			dst.Pix[p*3+2] = v
		}
		return dst
	case *Color:
		if src.Channels == 3 {
			return src.Clone()
		}
		dst := NewColor(src.Width, src.Height, 3)
		n := src.Width * src.Height
		for p := 0; p < n; p++ {
			s := p * src.Channels
			dst.Pix[p*3] = src.Pix[s]
			dst.Pix[p*3+1] = src.Pix[s+1]
			dst.Pix[p*3+2] = src.Pix[s+2]
		}
		return dst
	}
	return nil
}

// Resize scales c to width x height using bilinear interpolation and
// returns a new three-channel raster.
func Resize(c *Color, width, height int) *Color {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), c.ToRGBA(), c.Bounds(), draw.Src, nil)
	return FromRGBA(dst)
}

// FromRGBA packs an *image.RGBA into a three-channel Color, ignoring alpha.
func FromRGBA(img *image.RGBA) *Color {
	b := img.Bounds()
	dst := NewColor(b.Dx(), b.Dy(), 3)
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			d := (y*b.Dx() + x) * 3
			dst.Pix[d] = row[x*4]
			dst.Pix[d+1] = row[x*4+1]
			dst.Pix[d+2] = row[x*4+2]
		}
	}
	return dst
}

// FromImage converts a decoded image.Image into the matching raster
// variant: gray color models become Grayscale, opaque images become a
// three-channel Color and anything that may carry transparency becomes a
// four-channel Color with non-premultiplied alpha.
func FromImage(img image.Image) Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		g := NewGrayscale(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				g.Pix[y*w+x] = v.Y
			}
		}
		return g
	}

	if isOpaque(img) {
		c := NewColor(w, h, 3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				i := (y*w + x) * 3
				c.Pix[i] = uint8(r >> 8)
				c.Pix[i+1] = uint8(g >> 8)
				c.Pix[i+2] = uint8(bl >> 8)
			}
		}
		return c
	}

	c := NewColor(w, h, 4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 4
			c.Pix[i] = v.R
			c.Pix[i+1] = v.G
			c.Pix[i+2] = v.B
			c.Pix[i+3] = v.A
		}
	}
	return c
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
