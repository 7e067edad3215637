// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// Stage writes normalized frames into a video file.
type Stage struct {
	encoder  ports.VideoEncoder
	fs       ports.FileSystem
	progress ports.Progress
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.VideoEncoder, fs ports.FileSystem, progress ports.Progress, logger ports.Logger) *Stage {
	return &Stage{
		encoder:  encoder,
		fs:       fs,
		progress: progress,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute opens the output, writes every frame in order and releases the
// output exactly once. If writing fails the partial file is removed.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{OutputPath: input.OutputPath}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to encode")
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("%w %s: invalid frame rate %d", pipeline.ErrSinkOpen, input.OutputPath, input.FPS)
	}

	// All frames share the size of the first one after normalization.
	width, height := input.Frames[0].Width, input.Frames[0].Height

	opts := ports.EncoderOptions{
		Codec:   input.Codec,
		Quality: input.Quality,
	}

	sink, err := s.encoder.Open(input.OutputPath, width, height, float64(input.FPS), opts)
	if err != nil {
		return result, fmt.Errorf("%w %s: %w", pipeline.ErrSinkOpen, input.OutputPath, err)
	}
	s.logger.Debug("Opened %s (%dx%d, %d fps, %s)", input.OutputPath, width, height, input.FPS, input.Codec)

	written, err := s.writeFrames(ctx, sink, input.Frames)
	result.FramesWritten = written
	if err != nil {
		if rmErr := s.fs.Remove(input.OutputPath); rmErr != nil {
			s.logger.Debug("Could not remove partial output %s: %v", input.OutputPath, rmErr)
		}
		return result, err
	}

	result.DurationMs = written * 1000 / input.FPS
	if size, err := s.fs.Size(input.OutputPath); err == nil {
		result.FileSize = size
	}

	return result, nil
}

// writeFrames writes frames in order. The sink is closed on every return
// path, including a panic inside WriteFrame.
func (s *Stage) writeFrames(ctx context.Context, sink ports.VideoSink, frames []*raster.Color) (written int, err error) {
	s.progress.Start(len(frames), "Encoding")
	defer s.progress.Finish()

	defer func() {
		if closeErr := sink.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close video: %w", closeErr))
		}
	}()

	for i, frame := range frames {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		if err := sink.WriteFrame(frame); err != nil {
			return written, fmt.Errorf("write frame %d: %w", i, err)
		}
		written++
		s.progress.Increment()
	}

	return written, nil
}
