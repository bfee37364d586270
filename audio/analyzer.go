package audio

import (
	"math"
	"sync"

	fft "github.com/mjibson/go-dsp/fft"
)

const (
	fftInputSize      = 1024
	fftBins           = fftInputSize / 2
	historyBufferSize = fftInputSize * 4

	minDecibels = -100.0
	maxDecibels = -30.0
)

// Analyzer keeps a history of recent mono samples and turns it into a
// smoothed, decibel-scaled spectrum.
type Analyzer struct {
	channels      int
	historyBuffer []float32
	bufferPos     int
	mutex         sync.Mutex

	window []float64

	// For temporal smoothing
	lastFFT         []float64
	smoothingFactor float64
}

// NewAnalyzer creates an analyzer for interleaved input with the given
// channel count.
func NewAnalyzer(channels int) *Analyzer {
	a := &Analyzer{
		channels:        max(channels, 1),
		historyBuffer:   make([]float32, historyBufferSize),
		window:          blackmanWindow(fftInputSize),
		lastFFT:         make([]float64, fftBins),
		smoothingFactor: 0.8,
	}
	for i := range a.lastFFT {
		a.lastFFT[i] = minDecibels
	}
	return a
}

// Write appends interleaved samples to the history. It is safe to use as a
// Controller tap.
func (a *Analyzer) Write(samples []float32) {
	mono := Downmix(samples, a.channels)
	a.mutex.Lock()
	for _, sample := range mono {
		a.historyBuffer[a.bufferPos] = sample
		a.bufferPos = (a.bufferPos + 1) % historyBufferSize
	}
	a.mutex.Unlock()
}

// getRecentSamples retrieves the latest samples from the history buffer.
func (a *Analyzer) getRecentSamples(numSamples int) []float32 {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	out := make([]float32, numSamples)
	for i := 0; i < numSamples; i++ {
		index := (a.bufferPos - numSamples + i + historyBufferSize) % historyBufferSize
		out[i] = a.historyBuffer[index]
	}
	return out
}

// Spectrum runs one FFT over the most recent samples, folds it into the
// smoothed history and returns every bin scaled to [0,1].
func (a *Analyzer) Spectrum() []float64 {
	samples := a.getRecentSamples(fftInputSize)
	samples64 := make([]float64, fftInputSize)
	for i, s := range samples {
		samples64[i] = float64(s) * a.window[i]
	}

	fftResult := fft.FFTReal(samples64)

	a.mutex.Lock()
	defer a.mutex.Unlock()
	out := make([]float64, fftBins)
	for i := 0; i < fftBins; i++ {
		re := real(fftResult[i])
		im := imag(fftResult[i])
		magnitude := math.Sqrt(re*re+im*im) * (2.0 / float64(fftInputSize))
		db := 20 * math.Log10(magnitude+1e-9)

		a.lastFFT[i] = (a.smoothingFactor * a.lastFFT[i]) + ((1.0 - a.smoothingFactor) * db)
		out[i] = scaleDecibels(a.lastFFT[i])
	}
	return out
}

// Bands groups a fresh spectrum into n bands, each the loudest bin it covers.
func (a *Analyzer) Bands(n int) []float64 {
	if n <= 0 {
		return nil
	}
	spectrum := a.Spectrum()
	bands := make([]float64, n)
	per := max(len(spectrum)/n, 1)
	for i := range bands {
		lo := i * per
		hi := min(lo+per, len(spectrum))
		for _, v := range spectrum[lo:hi] {
			bands[i] = max(bands[i], v)
		}
	}
	return bands
}

func scaleDecibels(db float64) float64 {
	switch {
	case db < minDecibels:
		return 0
	case db > maxDecibels:
		return 1
	default:
		return (db - minDecibels) / (maxDecibels - minDecibels)
	}
}

// blackmanWindow generates a Blackman window.
func blackmanWindow(size int) []float64 {
	window := make([]float64, size)
	a0 := 0.42
	a1 := 0.5
	a2 := 0.08
	invSize := 1.0 / float64(size-1)
	for i := range window {
		t := float64(i) * invSize
		window[i] = a0 - (a1 * math.Cos(2*math.Pi*t)) + (a2 * math.Cos(4*math.Pi*t))
	}
	return window
}
