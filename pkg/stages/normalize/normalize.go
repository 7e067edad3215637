// Package normalize implements frame size reconciliation.
//
// Images of different sizes are brought to one target size chosen per axis:
// the smallest policy takes the minimum width and the minimum height, the
// largest policy the maximum of each. Width and height are independent, so
// the target may match none of the inputs.
package normalize

import (
	"context"
	"fmt"

	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/raster"
)

// Stage wraps Normalize as a pipeline stage.
type Stage struct{}

// NewStage creates a new normalize stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute normalizes input.Images with input.Policy.
func (s *Stage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	images, size, err := Normalize(input.Images, input.Policy)
	if err != nil {
		return pipeline.NormalizeResult{}, err
	}
	return pipeline.NormalizeResult{Images: images, Size: size}, nil
}

// TargetSize computes the per-axis minimum or maximum of the image sizes.
func TargetSize(images []*raster.Color, policy pipeline.Policy) (pipeline.Dimension, error) {
	if len(images) == 0 {
		return pipeline.Dimension{}, pipeline.ErrEmptyImageSet
	}

	var pick func(a, b int) int
	switch policy {
	case pipeline.PolicySmallest:
		pick = func(a, b int) int { return min(a, b) }
	case pipeline.PolicyLargest:
		pick = func(a, b int) int { return max(a, b) }
	default:
		return pipeline.Dimension{}, fmt.Errorf("unknown size policy %q", policy)
	}

	size := pipeline.Dimension{Width: images[0].Width, Height: images[0].Height}
	for _, img := range images[1:] {
		size.Width = pick(size.Width, img.Width)
		size.Height = pick(size.Height, img.Height)
	}
	return size, nil
}

// Normalize returns one image per input, all of the target size, together
// with that size. Images already at the target size are cloned, the rest
// are resampled with bilinear interpolation. The returned images never
// share pixel buffers with the inputs.
func Normalize(images []*raster.Color, policy pipeline.Policy) ([]*raster.Color, pipeline.Dimension, error) {
	size, err := TargetSize(images, policy)
	if err != nil {
		return nil, size, err
	}

	out := make([]*raster.Color, len(images))
	for i, img := range images {
		if img.Width == size.Width && img.Height == size.Height {
			out[i] = img.Clone()
			continue
		}
		out[i] = raster.Resize(img, size.Width, size.Height)
	}
	return out, size, nil
}
