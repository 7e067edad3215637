package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/user/framereel/pkg/mocks"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
	"github.com/user/framereel/pkg/raster"
)

// mockDiscoverStage is a mock for the discover stage.
type mockDiscoverStage struct {
	result pipeline.DiscoverResult
	err    error
	input  pipeline.DiscoverInput
}

func (m *mockDiscoverStage) Execute(ctx context.Context, input pipeline.DiscoverInput) (pipeline.DiscoverResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.DiscoverResult{}, m.err
	}
	return m.result, nil
}

// mockDecodeStage is a mock for the decode stage.
type mockDecodeStage struct {
	result pipeline.DecodeResult
	err    error
	input  pipeline.DecodeInput
}

func (m *mockDecodeStage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.DecodeResult{}, m.err
	}
	return m.result, nil
}

// mockNormalizeStage is a mock for the normalize stage.
type mockNormalizeStage struct {
	result pipeline.NormalizeResult
	err    error
	input  pipeline.NormalizeInput
}

func (m *mockNormalizeStage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.NormalizeResult{}, m.err
	}
	return m.result, nil
}

// mockEncodeStage is a mock for the encode stage.
type mockEncodeStage struct {
	result pipeline.EncodeResult
	err    error
	called bool
	input  pipeline.EncodeInput
}

func (m *mockEncodeStage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	m.called = true
	m.input = input
	if m.err != nil {
		return pipeline.EncodeResult{}, m.err
	}
	return m.result, nil
}

type testStages struct {
	discover  *mockDiscoverStage
	decode    *mockDecodeStage
	normalize *mockNormalizeStage
	encode    *mockEncodeStage
}

func newTestStages() *testStages {
	a := raster.NewColor(4, 4, 3)
	b := raster.NewColor(8, 8, 3)
	return &testStages{
		discover: &mockDiscoverStage{
			result: pipeline.DiscoverResult{Files: []string{"in/a1.png", "in/a2.png", "in/bad.png"}},
		},
		decode: &mockDecodeStage{
			result: pipeline.DecodeResult{
				Images: []pipeline.DecodedImage{
					{Path: "in/a1.png", Image: a},
					{Path: "in/a2.png", Image: b},
				},
				Skipped: []pipeline.DecodeError{
					{Path: "in/bad.png", Err: errors.New("unexpected EOF")},
				},
			},
		},
		normalize: &mockNormalizeStage{
			result: pipeline.NormalizeResult{
				Images: []*raster.Color{raster.NewColor(8, 8, 3), raster.NewColor(8, 8, 3)},
				Size:   pipeline.Dimension{Width: 8, Height: 8},
			},
		},
		encode: &mockEncodeStage{
			result: pipeline.EncodeResult{
				OutputPath:    "out.mp4",
				FramesWritten: 2,
				DurationMs:    66,
				FileSize:      1234,
			},
		},
	}
}

func (s *testStages) orchestrator(sink ports.DebugSink, logger ports.Logger) *Orchestrator {
	return New(s.discover, s.decode, s.normalize, s.encode, sink, logger)
}

func testConfig() Config {
	config := DefaultConfig()
	config.ImageDir = "in"
	config.OutputPath = "out.mp4"
	return config
}

func TestOrchestrator_Run(t *testing.T) {
	stages := newTestStages()
	orch := stages.orchestrator(mocks.NewDebugSink(false), mocks.NewLogger())

	result, err := orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stages.discover.input.Dir != "in" {
		t.Errorf("expected discover dir 'in', got %q", stages.discover.input.Dir)
	}
	if len(stages.decode.input.Files) != 3 {
		t.Errorf("expected 3 files passed to decode, got %d", len(stages.decode.input.Files))
	}
	if len(stages.normalize.input.Images) != 2 {
		t.Errorf("expected 2 images passed to normalize, got %d", len(stages.normalize.input.Images))
	}
	if stages.normalize.input.Policy != pipeline.PolicyLargest {
		t.Errorf("expected largest policy, got %q", stages.normalize.input.Policy)
	}

	in := stages.encode.input
	if in.OutputPath != "out.mp4" || in.FPS != 30 || in.Codec != "mp4v" || in.Quality != 90 {
		t.Errorf("unexpected encode input %+v", in)
	}
	if len(in.Frames) != 2 {
		t.Errorf("expected 2 frames to encode, got %d", len(in.Frames))
	}

	if result.FilesFound != 3 {
		t.Errorf("expected 3 files found, got %d", result.FilesFound)
	}
	if len(result.Skipped) != 1 {
		t.Errorf("expected 1 skipped file, got %d", len(result.Skipped))
	}
	if result.FrameSize != (pipeline.Dimension{Width: 8, Height: 8}) {
		t.Errorf("unexpected frame size %v", result.FrameSize)
	}
	if result.FrameCount != 2 || result.VideoFileSize != 1234 {
		t.Errorf("unexpected video info %+v", result)
	}
}

func TestOrchestrator_Run_StageOrder(t *testing.T) {
	stages := newTestStages()
	var calls []string

	discover := pipeline.StageFunc[pipeline.DiscoverInput, pipeline.DiscoverResult](
		func(ctx context.Context, in pipeline.DiscoverInput) (pipeline.DiscoverResult, error) {
			calls = append(calls, "discover")
			return stages.discover.Execute(ctx, in)
		})
	decode := pipeline.StageFunc[pipeline.DecodeInput, pipeline.DecodeResult](
		func(ctx context.Context, in pipeline.DecodeInput) (pipeline.DecodeResult, error) {
			calls = append(calls, "decode")
			return stages.decode.Execute(ctx, in)
		})
	normalize := pipeline.StageFunc[pipeline.NormalizeInput, pipeline.NormalizeResult](
		func(ctx context.Context, in pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
			calls = append(calls, "normalize")
			return stages.normalize.Execute(ctx, in)
		})
	encode := pipeline.StageFunc[pipeline.EncodeInput, pipeline.EncodeResult](
		func(ctx context.Context, in pipeline.EncodeInput) (pipeline.EncodeResult, error) {
			calls = append(calls, "encode")
			return stages.encode.Execute(ctx, in)
		})

	orch := New(discover, decode, normalize, encode, mocks.NewDebugSink(false), mocks.NewLogger())
	if _, err := orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"discover", "decode", "normalize", "encode"}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestOrchestrator_Run_WarnsAboutSkippedFiles(t *testing.T) {
	stages := newTestStages()
	logger := mocks.NewLogger()
	orch := stages.orchestrator(mocks.NewDebugSink(false), logger)

	if _, err := orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	warnings := logger.Entries(ports.LevelWarn)
	if len(warnings) != 1 || warnings[0] != "Skipped 1 unreadable files" {
		t.Errorf("unexpected warnings %v", warnings)
	}
}

func TestOrchestrator_Run_StageErrors(t *testing.T) {
	stageErr := errors.New("boom")

	tests := []struct {
		name   string
		setup  func(s *testStages)
		target error
	}{
		{
			name:   "discover",
			setup:  func(s *testStages) { s.discover.err = pipeline.ErrNoInputFiles },
			target: pipeline.ErrNoInputFiles,
		},
		{
			name:   "decode",
			setup:  func(s *testStages) { s.decode.err = pipeline.ErrNoDecodableImages },
			target: pipeline.ErrNoDecodableImages,
		},
		{
			name:   "normalize",
			setup:  func(s *testStages) { s.normalize.err = stageErr },
			target: stageErr,
		},
		{
			name:   "encode",
			setup:  func(s *testStages) { s.encode.err = pipeline.ErrSinkOpen },
			target: pipeline.ErrSinkOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := newTestStages()
			tt.setup(stages)
			orch := stages.orchestrator(mocks.NewDebugSink(false), mocks.NewLogger())

			_, err := orch.Run(context.Background(), testConfig())
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestOrchestrator_Run_NoEncodeAfterFailure(t *testing.T) {
	stages := newTestStages()
	stages.decode.err = pipeline.ErrNoDecodableImages
	orch := stages.orchestrator(mocks.NewDebugSink(false), mocks.NewLogger())

	if _, err := orch.Run(context.Background(), testConfig()); err == nil {
		t.Fatal("expected error")
	}
	if stages.encode.called {
		t.Error("encode stage must not run when decoding failed")
	}
}

func TestOrchestrator_Run_WithDebugSink(t *testing.T) {
	stages := newTestStages()
	sink := mocks.NewDebugSink(true)
	orch := stages.orchestrator(sink, mocks.NewLogger())

	if _, err := orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.ManifestJSON) == 0 {
		t.Error("expected manifest to be saved")
	}
	if len(sink.Frames) != 2 {
		t.Errorf("expected 2 debug frames, got %d", len(sink.Frames))
	}
}
