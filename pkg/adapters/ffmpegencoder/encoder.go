// Package ffmpegencoder encodes video by piping raw RGB frames into an
// external ffmpeg process.
package ffmpegencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// Encoder implements ports.VideoEncoder using ffmpeg.
type Encoder struct {
	ffmpegPath string
}

// New creates an encoder. An empty path searches the usual locations on Open.
func New(ffmpegPath string) *Encoder {
	return &Encoder{ffmpegPath: ffmpegPath}
}

// Open starts ffmpeg writing to path.
func (e *Encoder) Open(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.VideoSink, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ffmpegencoder: invalid frame size %dx%d", width, height)
	}

	codec, err := Lookup(opts.Codec)
	if err != nil {
		return nil, err
	}

	ffmpegPath, err := FindFFmpeg(e.ffmpegPath)
	if err != nil {
		return nil, err
	}

	// ffmpeg opens the output only after reading input, so check it up front
	if err := checkWritable(path); err != nil {
		return nil, err
	}

	args := []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.3f", fps),
		"-i", "pipe:0", // Read from stdin
	}
	args = append(args, outputArgs(codec, opts.Codec, opts.Quality)...)
	args = append(args, path)

	cmd := exec.Command(ffmpegPath, args...)
	s := &sink{
		cmd:    cmd,
		width:  width,
		height: height,
	}
	cmd.Stderr = &s.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	s.stdin = stdin

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return s, nil
}

// checkWritable verifies that path can be created or truncated. A file
// created by the check is removed again.
func checkWritable(path string) error {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("output not writable: %w", err)
	}
	f.Close()

	if !existed {
		os.Remove(path)
	}
	return nil
}

type sink struct {
	mu sync.Mutex

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	width  int
	height int
	rgb    []byte
	closed bool
}

// WriteFrame writes one frame as packed RGB to ffmpeg.
func (s *sink) WriteFrame(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("ffmpegencoder: frame size %dx%d does not match %dx%d", b.Dx(), b.Dy(), s.width, s.height)
	}

	if _, err := s.stdin.Write(s.packRGB(img)); err != nil {
		return fmt.Errorf("failed to write frame: %w%s", err, s.stderrSuffix())
	}
	return nil
}

// packRGB returns the frame as tightly packed rgb24.
func (s *sink) packRGB(img image.Image) []byte {
	if c, ok := img.(*raster.Color); ok && c.Channels == 3 {
		return c.Pix
	}

	rgba := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	if s.rgb == nil {
		s.rgb = make([]byte, s.width*s.height*3)
	}
	for i, j := 0, 0; i < len(rgba.Pix); i, j = i+4, j+3 {
		s.rgb[j] = rgba.Pix[i]
		s.rgb[j+1] = rgba.Pix[i+1]
		s.rgb[j+2] = rgba.Pix[i+2]
	}
	return s.rgb
}

// Close ends the input stream and waits for ffmpeg to finish the file.
// Calling Close again is a no-op.
func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w%s", err, s.stderrSuffix())
	}
	return nil
}

func (s *sink) stderrSuffix() string {
	msg := strings.TrimSpace(s.stderr.String())
	if msg == "" {
		return ""
	}
	return ": " + msg
}

var (
	_ ports.VideoEncoder = (*Encoder)(nil)
	_ ports.VideoSink    = (*sink)(nil)
)
