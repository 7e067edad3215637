// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	ImageDir   string
	OutputPath string

	// Frames
	Policy pipeline.Policy

	// Encoding
	FPS     int
	Codec   string
	Quality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputPath: "demo.mp4",
		Policy:     pipeline.PolicyLargest,
		FPS:        30,
		Codec:      "mp4v",
		Quality:    90,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	discoverStage  pipeline.Stage[pipeline.DiscoverInput, pipeline.DiscoverResult]
	decodeStage    pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	discoverStage pipeline.Stage[pipeline.DiscoverInput, pipeline.DiscoverResult],
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		discoverStage:  discoverStage,
		decodeStage:    decodeStage,
		normalizeStage: normalizeStage,
		encodeStage:    encodeStage,
		sink:           sink,
		logger:         logger,
	}
}

// Run executes the complete pipeline: discover, decode, normalize, encode.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting pipeline")
	o.logger.Info("Converting %s to %s", config.ImageDir, config.OutputPath)

	// 1. Discover image files
	discovered, err := o.discoverStage.Execute(ctx, pipeline.DiscoverInput{Dir: config.ImageDir})
	if err != nil {
		o.logger.Error("Failed to discover images: %s", err)
		return RunResult{}, fmt.Errorf("discover stage: %w", err)
	}
	o.logger.Info("Found %d image files in %s", len(discovered.Files), config.ImageDir)

	// 2. Decode in natural order
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{Files: discovered.Files})
	if err != nil {
		o.logger.Error("Failed to decode images: %s", err)
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}
	if len(decoded.Skipped) > 0 {
		o.logger.Warn("Skipped %d unreadable files", len(decoded.Skipped))
	}

	// 3. Normalize to a common size
	normalized, err := o.normalizeStage.Execute(ctx, pipeline.NormalizeInput{
		Images: decoded.Rasters(),
		Policy: config.Policy,
	})
	if err != nil {
		o.logger.Error("Failed to normalize images: %s", err)
		return RunResult{}, fmt.Errorf("normalize stage: %w", err)
	}
	o.logger.Info("Normalizing %d images to %s (%s policy)", len(normalized.Images), normalized.Size, config.Policy)

	// Save debug output
	if o.sink.Enabled() {
		o.saveDebug(config, discovered, decoded, normalized)
	}

	// 4. Encode video
	o.logger.Info("Encoding %d frames at %d fps", len(normalized.Images), config.FPS)
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames:     normalized.Images,
		OutputPath: config.OutputPath,
		FPS:        config.FPS,
		Codec:      config.Codec,
		Quality:    config.Quality,
	})
	if err != nil {
		o.logger.Error("Failed to encode video: %s", err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info("Video encoded: %d bytes", encoded.FileSize)

	o.logger.Info("Pipeline completed successfully")

	// Build result for summary
	result := RunResult{
		ImageDir:      config.ImageDir,
		OutputPath:    encoded.OutputPath,
		FilesFound:    len(discovered.Files),
		Skipped:       decoded.Skipped,
		FrameSize:     normalized.Size,
		Policy:        config.Policy,
		FPS:           config.FPS,
		Codec:         config.Codec,
		FrameCount:    encoded.FramesWritten,
		VideoDuration: encoded.DurationMs,
		VideoFileSize: encoded.FileSize,
	}

	return result, nil
}

// manifest is the debug description of a run.
type manifest struct {
	ImageDir string         `json:"imageDir"`
	Output   string         `json:"output"`
	FPS      int            `json:"fps"`
	Codec    string         `json:"codec"`
	Policy   string         `json:"policy"`
	Size     manifestSize   `json:"size"`
	Files    []string       `json:"files"`
	Frames   []string       `json:"frames"`
	Skipped  []manifestSkip `json:"skipped"`
}

type manifestSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type manifestSkip struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func (o *Orchestrator) saveDebug(
	config Config,
	discovered pipeline.DiscoverResult,
	decoded pipeline.DecodeResult,
	normalized pipeline.NormalizeResult,
) {
	m := manifest{
		ImageDir: config.ImageDir,
		Output:   config.OutputPath,
		FPS:      config.FPS,
		Codec:    config.Codec,
		Policy:   string(config.Policy),
		Size:     manifestSize{Width: normalized.Size.Width, Height: normalized.Size.Height},
		Files:    discovered.Files,
		Frames:   make([]string, len(decoded.Images)),
		Skipped:  make([]manifestSkip, len(decoded.Skipped)),
	}
	for i, img := range decoded.Images {
		m.Frames[i] = img.Path
	}
	for i, s := range decoded.Skipped {
		m.Skipped[i] = manifestSkip{Path: s.Path, Error: s.Err.Error()}
	}

	if data, err := json.MarshalIndent(m, "", "  "); err == nil {
		if err := o.sink.SaveManifestJSON(data); err != nil {
			o.logger.Debug("Failed to save manifest: %v", err)
		}
	}

	for i, frame := range normalized.Images {
		if err := o.sink.SaveFrame(i, frame); err != nil {
			o.logger.Debug("Failed to save frame %d: %v", i, err)
		}
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input information
	ImageDir   string
	FilesFound int
	Skipped    []pipeline.DecodeError

	// Frame information
	FrameSize pipeline.Dimension
	Policy    pipeline.Policy

	// Video information
	OutputPath    string
	FPS           int
	Codec         string
	FrameCount    int
	VideoDuration int // in ms
	VideoFileSize int64
}
