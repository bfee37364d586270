package audio

// DownmixStereoToMono converts an interleaved stereo float32 buffer to mono
// by averaging the left and right channels.
func DownmixStereoToMono(stereo []float32) []float32 {
	if len(stereo)%2 != 0 {
		stereo = stereo[:len(stereo)-1]
	}
	mono := make([]float32, len(stereo)/2)
	for i := 0; i < len(mono); i++ {
		mono[i] = (stereo[i*2] + stereo[i*2+1]) * 0.5
	}
	return mono
}

// Downmix averages interleaved samples with the given channel count into
// mono. A trailing partial frame is dropped.
func Downmix(samples []float32, channels int) []float32 {
	switch channels {
	case 1:
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	case 2:
		return DownmixStereoToMono(samples)
	}
	if channels <= 0 {
		return nil
	}
	mono := make([]float32, len(samples)/channels)
	scale := 1 / float32(channels)
	for i := range mono {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		mono[i] = sum * scale
	}
	return mono
}
