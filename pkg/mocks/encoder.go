package mocks

import (
	"errors"
	"image"

	"github.com/user/framereel/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
// Each successful Open returns a VideoSink that records frames.
type VideoEncoder struct {
	OpenFunc func(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.VideoSink, error)

	// FailAfter makes WriteFrame fail once this many frames were written.
	// Zero disables the failure.
	FailAfter int

	// Recorded calls for verification
	OpenCalls []OpenCall
	Sinks     []*VideoSink
}

// OpenCall records a call to Open.
type OpenCall struct {
	Path    string
	Width   int
	Height  int
	FPS     float64
	Options ports.EncoderOptions
}

// ErrWriteFailed is returned by VideoSink.WriteFrame when FailAfter is reached.
var ErrWriteFailed = errors.New("mock: write failed")

func (m *VideoEncoder) Open(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.VideoSink, error) {
	m.OpenCalls = append(m.OpenCalls, OpenCall{Path: path, Width: width, Height: height, FPS: fps, Options: opts})
	if m.OpenFunc != nil {
		return m.OpenFunc(path, width, height, fps, opts)
	}
	sink := &VideoSink{failAfter: m.FailAfter}
	m.Sinks = append(m.Sinks, sink)
	return sink, nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)

// VideoSink is a mock implementation of ports.VideoSink.
type VideoSink struct {
	failAfter int

	Frames     []image.Image
	CloseCalls int
	CloseErr   error
}

func (m *VideoSink) WriteFrame(img image.Image) error {
	if m.failAfter > 0 && len(m.Frames) >= m.failAfter {
		return ErrWriteFailed
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *VideoSink) Close() error {
	m.CloseCalls++
	return m.CloseErr
}

var _ ports.VideoSink = (*VideoSink)(nil)
