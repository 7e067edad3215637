package mp4probe

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
)

func buildFragmented(t *testing.T, frames int) []byte {
	t.Helper()

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(30000, "video", "und")
	trak := init.Moov.Trak
	trak.Mdia.Minf.Stbl.Stsd.AddChild(mp4.CreateVisualSampleEntryBox("jpeg", 32, 24, &mp4.PaspBox{HSpacing: 1, VSpacing: 1}))
	trak.Tkhd.Width = mp4.Fixed32(32 << 16)
	trak.Tkhd.Height = mp4.Fixed32(24 << 16)

	var buf bytes.Buffer
	if err := mp4.NewFtyp("isom", 0x200, []string{"isom"}).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < frames; i++ {
		frag, err := mp4.CreateFragment(uint32(i+1), 1)
		if err != nil {
			t.Fatal(err)
		}
		data := []byte{0xff, 0xd8, 0xff, 0xd9}
		frag.AddFullSample(mp4.FullSample{
			Sample:     mp4.Sample{Flags: mp4.SyncSampleFlags, Size: uint32(len(data)), Dur: 1000},
			DecodeTime: uint64(i) * 1000,
			Data:       data,
		})
		if err := frag.Encode(&buf); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestProbe_Fragmented(t *testing.T) {
	data := buildFragmented(t, 4)

	info, err := Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if info.Codec != "jpeg" {
		t.Errorf("expected codec jpeg, got %q", info.Codec)
	}
	if info.Width != 32 || info.Height != 24 {
		t.Errorf("expected 32x24, got %dx%d", info.Width, info.Height)
	}
	if !info.Fragmented {
		t.Error("expected fragmented file")
	}
	if info.Frames != 4 {
		t.Errorf("expected 4 frames, got %d", info.Frames)
	}
	if info.Timescale != 30000 {
		t.Errorf("expected timescale 30000, got %d", info.Timescale)
	}
}

func TestProbeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, buildFragmented(t, 2), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := ProbeFile(path)
	if err != nil {
		t.Fatalf("ProbeFile failed: %v", err)
	}
	if info.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", info.Frames)
	}
}

func TestProbe_NoVideoTrack(t *testing.T) {
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(48000, "audio", "und")

	var buf bytes.Buffer
	if err := mp4.NewFtyp("isom", 0x200, []string{"isom"}).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	_, err := Probe(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, ErrNoVideoTrack) {
		t.Errorf("expected ErrNoVideoTrack, got %v", err)
	}
}

func TestProbeFile_Missing(t *testing.T) {
	if _, err := ProbeFile(filepath.Join(t.TempDir(), "none.mp4")); err == nil {
		t.Error("expected error for missing file")
	}
}
