// Package mp4probe reads basic video track information from MP4 files.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Info describes the first video track of an MP4 file.
type Info struct {
	// Codec is the sample entry type, e.g. "mp4v", "avc1" or "jpeg".
	Codec      string
	Width      int
	Height     int
	Frames     int
	Timescale  uint32
	Fragmented bool
}

// ProbeFile probes the MP4 file at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Probe(f)
}

// Probe reads track information from r.
func Probe(r io.Reader) (Info, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	return probeFile(mp4File)
}

func probeFile(mp4File *mp4.File) (Info, error) {
	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return Info{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		info, ok := probeTrack(trak)
		if !ok {
			continue
		}

		if mp4File.IsFragmented() {
			info.Fragmented = true
			info.Frames = countFragmentSamples(mp4File, trak.Tkhd.TrackID)
		}
		return info, nil
	}

	return Info{}, ErrNoVideoTrack
}

func probeTrack(trak *mp4.TrakBox) (Info, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return Info{}, false
	}

	// Only process video tracks
	if trak.Mdia.Hdlr.HandlerType != "vide" {
		return Info{}, false
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return Info{}, false
	}

	var info Info
	if trak.Mdia.Mdhd != nil {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}

	stbl := trak.Mdia.Minf.Stbl
	for _, child := range stbl.Stsd.Children {
		info.Codec = child.Type()
		if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
			info.Width = int(vse.Width)
			info.Height = int(vse.Height)
		}
		break
	}

	if stbl.Stsz != nil {
		info.Frames = int(stbl.Stsz.SampleNumber)
	}

	return info, true
}

// countFragmentSamples sums the trun sample counts of every fragment
// belonging to trackID.
func countFragmentSamples(mp4File *mp4.File, trackID uint32) int {
	total := 0
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd != nil && traf.Tfhd.TrackID != trackID {
					continue
				}
				for _, trun := range traf.Truns {
					total += int(trun.SampleCount())
				}
			}
		}
	}
	return total
}
