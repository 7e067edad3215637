package pipeline

import (
	"fmt"

	"github.com/user/framereel/pkg/raster"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// String formats the dimension as WxH.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Policy selects how a common frame size is chosen from differently sized
// images.
type Policy string

const (
	// PolicySmallest shrinks every frame to the per-axis minimum.
	PolicySmallest Policy = "smallest"
	// PolicyLargest grows every frame to the per-axis maximum.
	PolicyLargest Policy = "largest"
)

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicySmallest, PolicyLargest:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown size policy %q (expected smallest or largest)", s)
	}
}

// =============================================================================
// Discover Stage Types
// =============================================================================

// DiscoverInput contains parameters for directory scanning.
type DiscoverInput struct {
	Dir string
}

// DiscoverResult lists the recognized image files in natural order.
type DiscoverResult struct {
	Files []string // Full paths, natural-sorted by file name
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput lists the files to decode, in order.
type DecodeInput struct {
	Files []string
}

// DecodedImage is a canonical three-channel image and the file it came from.
type DecodedImage struct {
	Path  string
	Image *raster.Color
}

// DecodeResult contains the successfully decoded images and the files
// that were skipped.
type DecodeResult struct {
	Images  []DecodedImage
	Skipped []DecodeError
}

// Rasters returns the decoded images in order.
func (r DecodeResult) Rasters() []*raster.Color {
	out := make([]*raster.Color, len(r.Images))
	for i, img := range r.Images {
		out[i] = img.Image
	}
	return out
}

// =============================================================================
// Normalize Stage Types
// =============================================================================

// NormalizeInput contains the images to bring to a common size.
type NormalizeInput struct {
	Images []*raster.Color
	Policy Policy
}

// NormalizeResult contains freshly allocated images that all share Size.
type NormalizeResult struct {
	Images []*raster.Color
	Size   Dimension
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frames and sink parameters for encoding.
type EncodeInput struct {
	Frames     []*raster.Color
	OutputPath string
	FPS        int
	Codec      string // Four-character codec tag, e.g. "mp4v"
	Quality    int    // JPEG quality for intra-only codecs (1-100)
}

// EncodeResult contains information about the written video.
type EncodeResult struct {
	OutputPath    string
	FramesWritten int
	DurationMs    int
	FileSize      int64
}
