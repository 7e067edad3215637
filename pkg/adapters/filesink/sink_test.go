package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/raster"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), mocks.NewRenderer())

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveManifestJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, mocks.NewRenderer())

	data := []byte(`{"frames": 3}`)
	if err := sink.SaveManifestJSON(data); err != nil {
		t.Fatalf("SaveManifestJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "manifest.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, mocks.NewRenderer())

	if err := sink.SaveFrame(7, raster.NewColor(4, 4, 3)); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "frame-0007.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected frame to be saved at %s", expectedPath)
	}
}

func TestSink_SaveFrame_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewRenderer()
	renderer.EncodePNGFunc = func(img image.Image) ([]byte, error) {
		return nil, errors.New("encode failed")
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveFrame(0, raster.NewColor(2, 2, 3)); err == nil {
		t.Error("expected error when encoding fails")
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected no files to be written")
	}
}
