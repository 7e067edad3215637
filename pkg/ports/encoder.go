package ports

import (
	"image"
)

// VideoEncoder opens video outputs.
type VideoEncoder interface {
	// Open creates the output at path for frames of the given size and
	// frame rate. The returned sink must be closed exactly once.
	Open(path string, width, height int, fps float64, opts EncoderOptions) (VideoSink, error)
}

// VideoSink receives frames for a single open video output.
type VideoSink interface {
	// WriteFrame appends one frame. Frames are shown in call order.
	WriteFrame(img image.Image) error

	// Close finalizes the container and releases the output.
	Close() error
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Codec   string // Four-character codec tag, e.g. "mp4v", "avc1", "MJPG"
	Quality int    // JPEG quality for intra-only codecs (1-100, 0 = default)
}
