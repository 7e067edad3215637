// Package smartencoder selects a video encoder backend with fallback support.
package smartencoder

import (
	"errors"
	"fmt"

	"github.com/user/framereel/pkg/adapters/ffmpegencoder"
	"github.com/user/framereel/pkg/adapters/mjpegencoder"
	"github.com/user/framereel/pkg/ports"
)

// Mode selects how the backend is chosen.
type Mode string

const (
	// ModeAuto prefers ffmpeg and falls back to the built-in MJPEG writer.
	ModeAuto Mode = "auto"
	// ModeFFmpeg requires ffmpeg.
	ModeFFmpeg Mode = "ffmpeg"
	// ModeMJPEG always uses the built-in MJPEG writer.
	ModeMJPEG Mode = "mjpeg"
)

// ParseMode parses a mode name. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeFFmpeg, ModeMJPEG:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown encoder %q (expected auto, ffmpeg or mjpeg)", s)
}

// Backend represents the encoding backend used.
type Backend string

const (
	// BackendFFmpeg pipes frames into an external ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendMJPEG writes Motion JPEG into MP4 in process.
	BackendMJPEG Backend = "mjpeg"
)

// Info contains information about the selected encoder.
type Info struct {
	// Backend is the encoding backend being used.
	Backend Backend
	// Codec is the FourCC that will actually be written.
	Codec string
	// RequestedCodec is the FourCC that was originally requested.
	RequestedCodec string
	// FallbackUsed indicates whether a fallback occurred.
	FallbackUsed bool
}

// Options configures the smart encoder behavior.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// Logger is used to log fallback warnings.
	Logger ports.Logger
}

var (
	// ErrNoEncoderAvailable is returned when no encoder can serve the request.
	ErrNoEncoderAvailable = errors.New("smartencoder: no encoder available")
)

// New selects an encoder for writing codec into outputPath.
//
// The selection flow for ModeAuto:
//  1. Use ffmpeg when it can be found
//  2. Fall back to the MJPEG writer when the container allows it
func New(mode Mode, codec, outputPath string, opts Options) (ports.VideoEncoder, Info, error) {
	info := Info{RequestedCodec: codec}

	switch mode {
	case ModeFFmpeg:
		if _, err := ffmpegencoder.FindFFmpeg(opts.FFmpegPath); err != nil {
			return nil, Info{}, fmt.Errorf("%w: %w", ErrNoEncoderAvailable, err)
		}
		return ffmpegencoder.New(opts.FFmpegPath), withBackend(info, BackendFFmpeg, codec, false), nil

	case ModeMJPEG:
		if !mjpegencoder.Supports(outputPath, mjpegencoder.Codec) {
			return nil, Info{}, fmt.Errorf("%w: MJPEG output needs an .mp4, .m4v or .mov file", ErrNoEncoderAvailable)
		}
		fallback := !mjpegencoder.Supports(outputPath, codec)
		return forceCodec(mjpegencoder.New()), withBackend(info, BackendMJPEG, mjpegencoder.Codec, fallback), nil

	case ModeAuto, "":
		return selectAuto(codec, outputPath, opts, info)

	default:
		return nil, Info{}, fmt.Errorf("unknown encoder mode %q", mode)
	}
}

func selectAuto(codec, outputPath string, opts Options, info Info) (ports.VideoEncoder, Info, error) {
	if ffmpegencoder.IsAvailable(opts.FFmpegPath) {
		return ffmpegencoder.New(opts.FFmpegPath), withBackend(info, BackendFFmpeg, codec, false), nil
	}

	if mjpegencoder.Supports(outputPath, codec) {
		return mjpegencoder.New(), withBackend(info, BackendMJPEG, codec, false), nil
	}

	if !mjpegencoder.Supports(outputPath, mjpegencoder.Codec) {
		return nil, Info{}, fmt.Errorf("%w: ffmpeg not found and %s cannot hold MJPEG", ErrNoEncoderAvailable, outputPath)
	}

	if opts.Logger != nil {
		opts.Logger.Warn("ffmpeg not available, falling back to MJPEG encoder")
	}

	return forceCodec(mjpegencoder.New()), withBackend(info, BackendMJPEG, mjpegencoder.Codec, true), nil
}

func withBackend(info Info, backend Backend, codec string, fallback bool) Info {
	info.Backend = backend
	info.Codec = codec
	info.FallbackUsed = fallback
	return info
}

// mjpegOnly rewrites the requested codec to MJPEG.
type mjpegOnly struct {
	inner ports.VideoEncoder
}

func forceCodec(inner ports.VideoEncoder) ports.VideoEncoder {
	return &mjpegOnly{inner: inner}
}

func (e *mjpegOnly) Open(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.VideoSink, error) {
	opts.Codec = mjpegencoder.Codec
	return e.inner.Open(path, width, height, fps, opts)
}
