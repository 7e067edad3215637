package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputFiles is returned when the image directory holds no
	// recognized image files.
	ErrNoInputFiles = errors.New("no supported image files found")

	// ErrNoDecodableImages is returned when every matched file failed to decode.
	ErrNoDecodableImages = errors.New("no images could be decoded")

	// ErrSinkOpen is returned when the output video could not be opened.
	ErrSinkOpen = errors.New("cannot open video output")

	// ErrEmptyImageSet is returned when normalization is asked to work on
	// zero images.
	ErrEmptyImageSet = errors.New("normalize requires at least one image")
)

// DecodeError describes a file that matched by extension but could not be
// decoded. It is reported as a warning; the file is skipped.
type DecodeError struct {
	Path string
	Err  error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
