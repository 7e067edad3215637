package summarizer

import "time"

// Summary contains all data collected during a conversion run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input directory and decode results
	Input InputInfo

	// Conversion settings
	Settings Settings

	// Video output details
	Video VideoInfo
}

// InputInfo describes the scanned directory.
type InputInfo struct {
	Dir        string
	FilesFound int
	Decoded    int
	Skipped    []SkippedFile
}

// SkippedFile is a file that matched by extension but failed to decode.
type SkippedFile struct {
	Path   string
	Reason string
}

// Settings contains the conversion configuration.
type Settings struct {
	Policy       string
	FPS          int
	Codec        string
	Encoder      string
	FallbackUsed bool
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	OutputPath string
	FrameCount int
	DurationMs int
	FileSize   int64
	Width      int
	Height     int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input directory information.
func (b *Builder) WithInput(dir string, filesFound, decoded int) *Builder {
	b.summary.Input.Dir = dir
	b.summary.Input.FilesFound = filesFound
	b.summary.Input.Decoded = decoded
	return b
}

// WithSkipped records a skipped file.
func (b *Builder) WithSkipped(path, reason string) *Builder {
	b.summary.Input.Skipped = append(b.summary.Input.Skipped, SkippedFile{
		Path:   path,
		Reason: reason,
	})
	return b
}

// WithSettings sets conversion settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
