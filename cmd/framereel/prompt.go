package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/stages/discover"
)

// prompter asks for missing settings on an interactive terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fs  ports.FileSystem
}

func newPrompter(in *bufio.Reader, out io.Writer, fs ports.FileSystem) *prompter {
	return &prompter{in: in, out: out, fs: fs}
}

// readLine prints the question and returns the trimmed answer.
func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDir asks until the answer names a directory with at least one image.
func (p *prompter) AskDir() (string, error) {
	stage := discover.NewStage(p.fs, logger.NewNoop())
	for {
		dir, err := p.readLine(l10n.T("Image directory: "))
		if err != nil {
			return "", err
		}
		if dir == "" {
			continue
		}
		if _, err := stage.Execute(context.Background(), pipeline.DiscoverInput{Dir: dir}); err != nil {
			fmt.Fprintln(p.out, l10n.F("No images found in %s, please try again", dir))
			continue
		}
		return dir, nil
	}
}

// AskOutput asks for the output path, keeping def on an empty answer.
func (p *prompter) AskOutput(def string) (string, error) {
	answer, err := p.readLine(l10n.F("Output file [%s]: ", def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskFPS asks until a positive integer is given, keeping def on an empty answer.
func (p *prompter) AskFPS(def int) (int, error) {
	for {
		answer, err := p.readLine(l10n.F("Frames per second [%d]: ", def))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		fps, err := strconv.Atoi(answer)
		if err != nil || fps <= 0 {
			fmt.Fprintln(p.out, l10n.T("Please enter a positive whole number"))
			continue
		}
		return fps, nil
	}
}
