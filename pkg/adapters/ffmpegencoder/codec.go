package ffmpegencoder

import (
	"fmt"
	"strconv"
)

// codecs maps FourCC codes to ffmpeg encoder names.
var codecs = map[string]string{
	"mp4v": "mpeg4",
	"avc1": "libx264",
	"h264": "libx264",
	"H264": "libx264",
	"hvc1": "libx265",
	"hev1": "libx265",
	"av01": "libaom-av1",
	"MJPG": "mjpeg",
	"XVID": "libxvid",
	"VP80": "libvpx",
	"VP90": "libvpx-vp9",
}

// Lookup returns the ffmpeg encoder name for a FourCC.
func Lookup(fourcc string) (string, error) {
	name, ok := codecs[fourcc]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCodec, fourcc)
	}
	return name, nil
}

const evenPadFilter = "pad=ceil(iw/2)*2:ceil(ih/2)*2"

// outputArgs returns the encoder arguments for the given ffmpeg encoder
// and a quality in 1..100.
func outputArgs(encoder, fourcc string, quality int) []string {
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	args := []string{"-c:v", encoder}

	switch encoder {
	case "mpeg4", "libxvid":
		// qscale 2 (best) .. 31 (worst)
		q := 31 - quality*29/100
		args = append(args, "-q:v", strconv.Itoa(q), "-pix_fmt", "yuv420p")
	case "mjpeg":
		q := 31 - quality*29/100
		args = append(args, "-q:v", strconv.Itoa(q), "-pix_fmt", "yuvj420p")
	case "libx264", "libx265":
		crf := 51 - quality*51/100
		args = append(args, "-preset", "fast", "-crf", strconv.Itoa(crf), "-pix_fmt", "yuv420p")
	case "libaom-av1", "libvpx", "libvpx-vp9":
		crf := 63 - quality*59/100
		args = append(args, "-crf", strconv.Itoa(crf), "-b:v", "0", "-pix_fmt", "yuv420p")
	}

	// 4:2:0 chroma needs even dimensions; odd sizes gain one edge row or column
	args = append(args, "-vf", evenPadFilter)

	switch fourcc {
	case "hvc1", "avc1":
		args = append(args, "-tag:v", fourcc)
	}

	return args
}
