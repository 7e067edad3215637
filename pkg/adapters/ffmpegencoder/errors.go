package ffmpegencoder

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("ffmpegencoder: ffmpeg not found")

	// ErrUnsupportedCodec is returned for FourCCs with no known ffmpeg encoder.
	ErrUnsupportedCodec = errors.New("ffmpegencoder: unsupported codec")

	// ErrClosed is returned when writing to a closed sink.
	ErrClosed = errors.New("ffmpegencoder: sink closed")
)
