package summarizer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/user/framereel/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithInput(t *testing.T) {
	summary := NewBuilder().
		WithInput("shots", 5, 4).
		WithSkipped("shots/bad.png", "unexpected EOF").
		Build()

	if summary.Input.Dir != "shots" {
		t.Errorf("expected dir 'shots', got '%s'", summary.Input.Dir)
	}
	if summary.Input.FilesFound != 5 || summary.Input.Decoded != 4 {
		t.Errorf("unexpected counts %+v", summary.Input)
	}
	if len(summary.Input.Skipped) != 1 || summary.Input.Skipped[0].Path != "shots/bad.png" {
		t.Errorf("unexpected skipped list %+v", summary.Input.Skipped)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	settings := Settings{
		Policy:  "largest",
		FPS:     30,
		Codec:   "mp4v",
		Encoder: "ffmpeg",
	}

	summary := NewBuilder().WithSettings(settings).Build()

	if summary.Settings != settings {
		t.Errorf("expected %+v, got %+v", settings, summary.Settings)
	}
}

func TestBuilder_WithVideo(t *testing.T) {
	video := VideoInfo{
		OutputPath: "demo.mp4",
		FrameCount: 90,
		DurationMs: 3000,
		FileSize:   204800,
		Width:      640,
		Height:     480,
	}

	summary := NewBuilder().WithVideo(video).Build()

	if summary.Video != video {
		t.Errorf("expected %+v, got %+v", video, summary.Video)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	writer := NewWriter(FormatFunc(func(s *Summary) string {
		return "summary for " + s.Input.Dir
	}), fs)

	path := filepath.Join("reports", "run.md")
	if err := writer.Write(path, NewBuilder().WithInput("shots", 1, 1).Build()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected file at %s", path)
	}
	if string(data) != "summary for shots" {
		t.Errorf("unexpected content %q", data)
	}
}
