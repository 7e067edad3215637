// Package discover implements the directory scanning stage.
package discover

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framereel/pkg/natsort"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// Extensions lists the recognized image file extensions.
// Matching is case-sensitive: "photo.JPG" is not picked up.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// Stage finds image files in a directory and orders them naturally.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new discover stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("discover"),
	}
}

// Execute lists the recognized image files of input.Dir in natural order.
// Returns pipeline.ErrNoInputFiles when the directory is missing,
// unreadable or holds no recognized image.
func (s *Stage) Execute(ctx context.Context, input pipeline.DiscoverInput) (pipeline.DiscoverResult, error) {
	result := pipeline.DiscoverResult{}

	entries, err := s.fs.ReadDir(input.Dir)
	if err != nil {
		return result, fmt.Errorf("%w in %s: %v", pipeline.ErrNoInputFiles, input.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir || !IsImageName(e.Name) {
			continue
		}
		names = append(names, e.Name)
	}

	if len(names) == 0 {
		return result, fmt.Errorf("%w in %s", pipeline.ErrNoInputFiles, input.Dir)
	}

	natsort.Strings(names)

	result.Files = make([]string, len(names))
	for i, name := range names {
		result.Files[i] = filepath.Join(input.Dir, name)
	}

	s.logger.Debug("Found %d image files in %s", len(result.Files), input.Dir)
	return result, nil
}

// IsImageName reports whether name has a recognized image extension.
// Hidden files (leading dot) are never recognized.
func IsImageName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
