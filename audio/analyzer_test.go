package audio

import (
	"math"
	"testing"
)

func TestAnalyzerSilence(t *testing.T) {
	a := NewAnalyzer(1)
	a.Write(make([]float32, fftInputSize))
	for _, b := range a.Bands(8) {
		if b != 0 {
			t.Fatalf("silence produced band level %v", b)
		}
	}
}

func TestAnalyzerTone(t *testing.T) {
	const rate = 44100.0
	a := NewAnalyzer(2)
	stereo := make([]float32, fftInputSize*2)
	for i := 0; i < fftInputSize; i++ {
		v := float32(math.Sin(2 * math.Pi * 1000 * float64(i) / rate))
		stereo[i*2] = v
		stereo[i*2+1] = v
	}
	a.Write(stereo)

	var bands []float64
	for i := 0; i < 20; i++ {
		bands = a.Bands(8)
	}
	// 1 kHz lands in the first of eight bands.
	if bands[0] < 0.9 {
		t.Errorf("tone band level %v", bands[0])
	}
	if bands[7] > 0.1 {
		t.Errorf("high band level %v for a 1 kHz tone", bands[7])
	}
}

func TestAnalyzerBandsEdgeCases(t *testing.T) {
	a := NewAnalyzer(1)
	if a.Bands(0) != nil {
		t.Fatal("expected nil for zero bands")
	}
	if got := len(a.Bands(3)); got != 3 {
		t.Fatalf("got %d bands", got)
	}
}

func TestDownmix(t *testing.T) {
	if got := DownmixStereoToMono([]float32{1, 0, 0.5, 0.5, 9}); len(got) != 2 || got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("stereo downmix %v", got)
	}
	if got := Downmix([]float32{3, 0, 0, 0, 3, 0}, 3); len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("3-channel downmix %v", got)
	}
	if got := Downmix([]float32{0.25}, 1); len(got) != 1 || got[0] != 0.25 {
		t.Errorf("mono passthrough %v", got)
	}
}

func TestParseF32LE(t *testing.T) {
	b := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xbf} // 1.0, -0.5
	got, err := parseF32LE(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != -0.5 {
		t.Fatalf("parsed %v", got)
	}
	if _, err := parseF32LE(b[:3]); err == nil {
		t.Fatal("expected error for partial sample")
	}
}

func TestDecodeRejectsBadFormat(t *testing.T) {
	if _, err := Decode("x.mp3", DecodeOptions{SampleRate: 0, Channels: 2}); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
