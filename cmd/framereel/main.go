// Package main provides the CLI entry point for framereel.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/user/framereel/pkg/adapters/filesink"
	"github.com/user/framereel/pkg/adapters/ggrenderer"
	"github.com/user/framereel/pkg/adapters/logger"
	"github.com/user/framereel/pkg/adapters/mp4probe"
	"github.com/user/framereel/pkg/adapters/nullsink"
	"github.com/user/framereel/pkg/adapters/osfilesystem"
	"github.com/user/framereel/pkg/adapters/progress"
	"github.com/user/framereel/pkg/adapters/smartencoder"
	"github.com/user/framereel/pkg/config"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/stages/decode"
	"github.com/user/framereel/pkg/stages/discover"
	"github.com/user/framereel/pkg/stages/encode"
	"github.com/user/framereel/pkg/stages/normalize"
	"github.com/user/framereel/pkg/summarizer"
)

var version = "dev"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "framereel",
		Usage:   l10n.T("Assemble a directory of images into a video"),
		Version: version,
		Flags:   convertFlags(),
		Action:  runConvert,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     l10n.T("Show video track information of an MP4 file"),
				ArgsUsage: "FILE",
				Action:    runInspect,
			},
		},
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		// Input/Output
		&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: l10n.T("Directory containing the images"), Category: l10n.T("Input and Output")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output video file (default: demo.mp4)"), Category: l10n.T("Input and Output")},
		&cli.StringFlag{Name: "config", Usage: l10n.T("YAML configuration file"), Category: l10n.T("Input and Output")},

		// Video
		&cli.IntFlag{Name: "fps", Aliases: []string{"r"}, Usage: l10n.T("Frames per second (default: 30)"), Category: l10n.T("Video")},
		&cli.StringFlag{Name: "codec", Aliases: []string{"c"}, Usage: l10n.T("Four-character codec code (default: mp4v)"), Category: l10n.T("Video")},
		&cli.StringFlag{Name: "policy", Aliases: []string{"p"}, Usage: l10n.T("Frame size policy: smallest or largest (default: largest)"), Category: l10n.T("Video")},
		&cli.StringFlag{Name: "encoder", Aliases: []string{"e"}, Usage: l10n.T("Encoder backend: auto, ffmpeg or mjpeg (default: auto)"), Category: l10n.T("Video")},
		&cli.StringFlag{Name: "ffmpeg-path", Usage: l10n.T("Path to the ffmpeg executable"), Category: l10n.T("Video")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("Quality 1-100 (default: 90)"), Category: l10n.T("Video")},

		// Debug
		&cli.BoolFlag{Name: "debug", Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)"), Category: l10n.T("Debug")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	}
}

// runConvert executes the default conversion action.
func runConvert(c *cli.Context) error {
	fs := osfilesystem.New()

	cfg, fromFile, err := loadConfig(c, fs)
	if err != nil {
		return err
	}

	// Ask for missing values on an interactive terminal
	if isatty.IsTerminal(os.Stdin.Fd()) {
		p := newPrompter(bufio.NewReader(os.Stdin), os.Stdout, fs)
		if cfg.ImageDir == "" {
			if cfg.ImageDir, err = p.AskDir(); err != nil {
				return err
			}
		}
		if !c.IsSet("output") && !fromFile {
			if cfg.Output, err = p.AskOutput(cfg.Output); err != nil {
				return err
			}
		}
		if !c.IsSet("fps") && !fromFile {
			if cfg.FPS, err = p.AskFPS(cfg.FPS); err != nil {
				return err
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(cfg.Level())
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	orchConfig := cfg.ToOrchestratorConfig()

	// Create adapters
	renderer := ggrenderer.New()

	mode, _ := smartencoder.ParseMode(cfg.Encoder)
	encoder, encInfo, err := smartencoder.New(mode, cfg.Codec, orchConfig.OutputPath, smartencoder.Options{
		FFmpegPath: cfg.FFmpegPath,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	log.Info("Using %s encoder", encInfo.Backend)
	orchConfig.Codec = encInfo.Codec

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Progress bar only when stderr is a terminal
	var prog ports.Progress
	if !cfg.Quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		prog = progress.NewBar(os.Stderr)
	} else {
		prog = progress.NewNoop()
	}

	// Create stages
	discoverStage := discover.NewStage(fs, log)
	decodeStage := decode.NewStage(renderer, log)
	normalizeStage := normalize.NewStage()
	encodeStage := encode.NewStage(encoder, fs, prog, log)

	// Create orchestrator
	orch := orchestrator.New(
		discoverStage,
		decodeStage,
		normalizeStage,
		encodeStage,
		sink,
		log,
	)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if cfg.Summary != "" {
		if err := writeSummary(cfg.Summary, fs, result, encInfo); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cfg.Summary)
		}
	}

	log.Info("Output saved to %s", result.OutputPath)
	fmt.Println(result.OutputPath)
	return nil
}

// loadConfig layers defaults, the optional YAML file and CLI flags.
// fromFile reports whether a config file was read.
func loadConfig(c *cli.Context, fs ports.FileSystem) (cfg config.Config, fromFile bool, err error) {
	cfg = config.Defaults()
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFromFile(fs, path)
		if err != nil {
			return cfg, false, fmt.Errorf("load config: %w", err)
		}
		fromFile = true
	}

	if c.IsSet("dir") {
		cfg.ImageDir = c.String("dir")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("codec") {
		cfg.Codec = c.String("codec")
	}
	if c.IsSet("policy") {
		cfg.Policy = c.String("policy")
	}
	if c.IsSet("encoder") {
		cfg.Encoder = c.String("encoder")
	}
	if c.IsSet("ffmpeg-path") {
		cfg.FFmpegPath = c.String("ffmpeg-path")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}

	return cfg, fromFile, nil
}

func writeSummary(path string, fs ports.FileSystem, result orchestrator.RunResult, encInfo smartencoder.Info) error {
	builder := summarizer.NewBuilder().
		WithInput(result.ImageDir, result.FilesFound, result.FilesFound-len(result.Skipped)).
		WithSettings(summarizer.Settings{
			Policy:       string(result.Policy),
			FPS:          result.FPS,
			Codec:        result.Codec,
			Encoder:      string(encInfo.Backend),
			FallbackUsed: encInfo.FallbackUsed,
		}).
		WithVideo(summarizer.VideoInfo{
			OutputPath: result.OutputPath,
			FrameCount: result.FrameCount,
			DurationMs: result.VideoDuration,
			FileSize:   result.VideoFileSize,
			Width:      result.FrameSize.Width,
			Height:     result.FrameSize.Height,
		})
	for _, s := range result.Skipped {
		builder.WithSkipped(s.Path, s.Err.Error())
	}

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(path, builder.Build())
}

// runInspect prints the video track of an MP4 file.
func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("A video file argument is required"))
	}

	info, err := mp4probe.ProbeFile(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(l10n.F("Codec: %s", info.Codec))
	fmt.Println(l10n.F("Size: %dx%d", info.Width, info.Height))
	fmt.Println(l10n.F("Frames: %d", info.Frames))
	fmt.Println(l10n.F("Fragmented: %v", info.Fragmented))
	return nil
}
