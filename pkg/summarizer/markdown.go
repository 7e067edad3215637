package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) Option {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) Option {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Conversion Summary"))

	// Input
	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Image Directory"), s.Input.Dir)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Files Found"), s.Input.FilesFound)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Decoded"), s.Input.Decoded)
	fmt.Fprintf(&b, "| %s | %d |\n\n", t("Skipped"), len(s.Input.Skipped))

	if len(s.Input.Skipped) > 0 {
		fmt.Fprintf(&b, "### %s\n\n", t("Skipped Files"))
		for _, sk := range s.Input.Skipped {
			fmt.Fprintf(&b, "- `%s`: %s\n", sk.Path, sk.Reason)
		}
		b.WriteString("\n")
	}

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Size Policy"), s.Settings.Policy)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frame Rate"), s.Settings.FPS)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Codec"), s.Settings.Codec)
	encoder := s.Settings.Encoder
	if s.Settings.FallbackUsed {
		encoder += " (" + t("fallback") + ")"
	}
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("Encoder"), encoder)

	// Video
	fmt.Fprintf(&b, "## %s\n\n", t("Video"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Output"), s.Video.OutputPath)
	fmt.Fprintf(&b, "| %s | %dx%d |\n", t("Frame Size"), s.Video.Width, s.Video.Height)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames"), s.Video.FrameCount)
	fmt.Fprintf(&b, "| %s | %.2f s |\n", t("Duration"), float64(s.Video.DurationMs)/1000)
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("File Size"), formatBytes(s.Video.FileSize))

	// Footer
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05"))
	if f.version != "" {
		footer += fmt.Sprintf(" (framereel %s)", f.version)
	}
	fmt.Fprintf(&b, "---\n\n%s\n", footer)

	return b.String()
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
