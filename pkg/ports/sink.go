package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving normalized frames and run metadata for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveManifestJSON saves the run manifest (file order, sizes, skips) as JSON.
	SaveManifestJSON(data []byte) error

	// SaveFrame saves a normalized frame.
	SaveFrame(index int, img image.Image) error
}
