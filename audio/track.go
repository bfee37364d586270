package audio

import "time"

// Track is decoded PCM held in memory: interleaved float32 samples.
type Track struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of sample frames (one sample per channel).
func (t *Track) Frames() int {
	if t == nil || t.Channels <= 0 {
		return 0
	}
	return len(t.Samples) / t.Channels
}

func (t *Track) Duration() time.Duration {
	return t.frameTime(t.Frames())
}

func (t *Track) frameTime(frames int) time.Duration {
	if t == nil || t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(t.SampleRate)
}

func (t *Track) timeFrames(d time.Duration) int {
	if t == nil || t.SampleRate <= 0 {
		return 0
	}
	return int(d * time.Duration(t.SampleRate) / time.Second)
}
