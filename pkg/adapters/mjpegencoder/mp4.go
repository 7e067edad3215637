package mjpegencoder

import (
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

const trackID = uint32(1)

// writeInit writes ftyp and an empty moov with a single jpeg video track.
func (s *sink) writeInit() error {
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(s.timescale, "video", "und")

	trak := init.Moov.Trak

	width := uint16(s.width)
	height := uint16(s.height)

	entry := mp4.CreateVisualSampleEntryBox("jpeg", width, height, &mp4.PaspBox{HSpacing: 1, VSpacing: 1})
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(s.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(s.height << 16)

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(s.file); err != nil {
		return fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(s.file); err != nil {
		return fmt.Errorf("encode moov: %w", err)
	}
	return nil
}

// writeFragment writes data as the next sample in its own fragment.
// Every JPEG frame is a sync sample.
func (s *sink) writeFragment(data []byte) error {
	seq := uint32(s.frames + 1)

	frag, err := mp4.CreateFragment(seq, trackID)
	if err != nil {
		return fmt.Errorf("create fragment: %w", err)
	}

	frag.AddFullSample(mp4.FullSample{
		Sample: mp4.Sample{
			Flags: mp4.SyncSampleFlags,
			Size:  uint32(len(data)),
			Dur:   s.frameDur,
		},
		DecodeTime: uint64(s.frames) * uint64(s.frameDur),
		Data:       data,
	})

	if err := frag.Encode(s.file); err != nil {
		return fmt.Errorf("encode fragment %d: %w", seq, err)
	}
	return nil
}
