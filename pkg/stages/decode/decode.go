// Package decode implements the image decoding stage.
package decode

import (
	"context"
	"fmt"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// progressInterval is how often (in files) decoding progress is logged.
const progressInterval = 10

// Stage decodes image files and canonicalizes them to three-channel color.
type Stage struct {
	decoder ports.ImageDecoder
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(decoder ports.ImageDecoder, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes every file in order. A file that fails to decode is
// logged as a warning and skipped. Returns pipeline.ErrNoDecodableImages
// if nothing could be decoded.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{}
	total := len(input.Files)

	for i, path := range input.Files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		n := i + 1
		if n%progressInterval == 0 {
			s.logger.Info("Progress: %d/%d (%.1f%%)", n, total, float64(n)/float64(total)*100)
		}

		img, err := s.decoder.DecodeFile(path)
		if err != nil {
			skip := pipeline.DecodeError{Path: path, Err: err}
			s.logger.Warn("Failed to read %s, skipping: %v", path, err)
			result.Skipped = append(result.Skipped, skip)
			continue
		}

		result.Images = append(result.Images, pipeline.DecodedImage{
			Path:  path,
			Image: raster.Canonicalize(img),
		})
	}

	if len(result.Images) == 0 {
		return result, fmt.Errorf("%w (%d files tried)", pipeline.ErrNoDecodableImages, total)
	}

	s.logger.Info("Successfully read %d images", len(result.Images))
	return result, nil
}
