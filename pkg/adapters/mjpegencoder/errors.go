package mjpegencoder

import "errors"

var (
	// ErrUnsupportedCodec is returned when a codec other than MJPEG is requested.
	ErrUnsupportedCodec = errors.New("mjpegencoder: unsupported codec")

	// ErrUnsupportedContainer is returned for output extensions other than MP4/MOV.
	ErrUnsupportedContainer = errors.New("mjpegencoder: unsupported container")

	// ErrClosed is returned when writing to a closed sink.
	ErrClosed = errors.New("mjpegencoder: sink closed")
)
