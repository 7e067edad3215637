// Package mjpegencoder writes Motion JPEG video into fragmented MP4 files
// without any external tools.
package mjpegencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// DefaultQuality is used when EncoderOptions.Quality is zero.
const DefaultQuality = 90

// Codec is the FourCC this encoder produces.
const Codec = "MJPG"

// Encoder implements ports.VideoEncoder.
type Encoder struct{}

// New creates a new MJPEG encoder.
func New() *Encoder {
	return &Encoder{}
}

// Supports reports whether the encoder can write codec into a file at path.
func Supports(path, codec string) bool {
	return supportsCodec(codec) && supportsContainer(path)
}

func supportsCodec(codec string) bool {
	switch strings.ToLower(codec) {
	case "", "mjpg", "jpeg", "mjpeg":
		return true
	}
	return false
}

func supportsContainer(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	}
	return false
}

// Open creates the output file and writes the initialization segment.
func (e *Encoder) Open(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.VideoSink, error) {
	if !supportsCodec(opts.Codec) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, opts.Codec)
	}
	if !supportsContainer(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContainer, filepath.Ext(path))
	}
	if width <= 0 || height <= 0 || width > math.MaxUint16 || height > math.MaxUint16 {
		return nil, fmt.Errorf("mjpegencoder: invalid frame size %dx%d", width, height)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("mjpegencoder: invalid frame rate %v", fps)
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	if quality > 100 {
		quality = 100
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	s := &sink{
		file:      f,
		width:     width,
		height:    height,
		timescale: uint32(math.Round(fps * 1000)),
		frameDur:  1000,
		quality:   quality,
	}

	if err := s.writeInit(); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	return s, nil
}

// sink writes one moof+mdat fragment per frame.
type sink struct {
	mu sync.Mutex

	file      *os.File
	width     int
	height    int
	timescale uint32
	frameDur  uint32
	quality   int

	frames int
	closed bool
	buf    bytes.Buffer
}

// WriteFrame JPEG-encodes img and appends it as a new fragment.
func (s *sink) WriteFrame(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("mjpegencoder: frame size %dx%d does not match %dx%d", b.Dx(), b.Dy(), s.width, s.height)
	}

	s.buf.Reset()
	if err := jpeg.Encode(&s.buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return fmt.Errorf("encode JPEG: %w", err)
	}

	if err := s.writeFragment(s.buf.Bytes()); err != nil {
		return err
	}
	s.frames++
	return nil
}

// Close flushes and closes the output file. Calling Close again is a no-op.
func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return fmt.Errorf("sync output: %w", err)
	}
	return s.file.Close()
}

var (
	_ ports.VideoEncoder = (*Encoder)(nil)
	_ ports.VideoSink    = (*sink)(nil)
)
