package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DecodeOptions selects the PCM layout ffmpeg resamples the input to.
type DecodeOptions struct {
	FFMPEGPath string
	SampleRate int
	Channels   int
}

// Decode runs ffmpeg over path and returns its audio as interleaved float32
// samples.
func Decode(path string, opts DecodeOptions) (*Track, error) {
	if opts.SampleRate <= 0 || opts.Channels <= 0 {
		return nil, fmt.Errorf("invalid decode format: %d Hz, %d channels", opts.SampleRate, opts.Channels)
	}

	var stdout, stderr bytes.Buffer
	outputArgs := ffmpeg.KwArgs{
		"f":  "f32le",
		"ac": opts.Channels,
		"ar": opts.SampleRate,
	}
	ffmpegCmd := ffmpeg.Input(path).
		Output("pipe:", outputArgs).
		WithOutput(&stdout).
		WithErrorOutput(&stderr)

	if opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(opts.FFMPEGPath)
	}

	log.Printf("Decoding %s to %d Hz, %d channels", path, opts.SampleRate, opts.Channels)
	if err := ffmpegCmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed to decode %s: %w: %s", path, err, bytes.TrimSpace(stderr.Bytes()))
	}

	samples, err := parseF32LE(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	return &Track{
		Samples:    samples,
		Channels:   opts.Channels,
		SampleRate: opts.SampleRate,
	}, nil
}

// parseF32LE reads little-endian float32 samples. A trailing partial sample
// is an error.
func parseF32LE(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("pcm stream length %d is not a multiple of 4", len(b))
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, nil
}
