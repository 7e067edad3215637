// Package progress provides progress reporting implementations.
package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/user/framereel/pkg/ports"
)

// Bar renders a terminal progress bar.
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a progress bar that renders to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Start begins a new bar with the given total.
func (b *Bar) Start(total int, description string) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "▐",
			BarEnd:        "▌",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(b.w, "\n")
		}),
	)
}

// Increment advances the bar by one step.
func (b *Bar) Increment() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Add(1)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	b.bar = nil
}

var _ ports.Progress = (*Bar)(nil)

// Noop discards all progress updates.
type Noop struct{}

// NewNoop creates a progress reporter that does nothing.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Start(total int, description string) {}
func (n *Noop) Increment()                          {}
func (n *Noop) Finish()                             {}

var _ ports.Progress = (*Noop)(nil)
