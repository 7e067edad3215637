// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/framereel/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	encoder ports.ImageEncoder
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, encoder ports.ImageEncoder) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		encoder: encoder,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveManifestJSON saves the run manifest as manifest.json.
func (s *Sink) SaveManifestJSON(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	path := filepath.Join(s.baseDir, "manifest.json")
	return s.fs.WriteFile(path, data)
}

// SaveFrame saves a normalized frame as frames/frame-NNNN.png.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.encoder.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
