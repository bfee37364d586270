package audio

import (
	"sync"
	"time"
)

// PositionIndicator mirrors playback position as a fraction in [0,1].
type PositionIndicator interface {
	SetPosition(fraction float64)
}

// Source is pulled by a Sink for interleaved output samples.
type Source interface {
	Read(out []float32)
}

// Controller owns the playback state of a single track. Read is called from
// the audio device thread; everything else from the UI thread.
type Controller struct {
	mu        sync.Mutex
	track     *Track
	playing   bool
	pos       int // frames
	muted     bool
	volume    float64
	indicator PositionIndicator
	tap       func([]float32)
}

// NewController returns a paused controller at full volume. A nil track is
// allowed and plays silence.
func NewController(track *Track) *Controller {
	return &Controller{track: track, volume: 1}
}

// SetIndicator sets the control that Stop resets to zero.
func (c *Controller) SetIndicator(ind PositionIndicator) {
	c.mu.Lock()
	c.indicator = ind
	c.mu.Unlock()
}

// SetTap registers fn to receive every buffer handed to the device.
func (c *Controller) SetTap(fn func([]float32)) {
	c.mu.Lock()
	c.tap = fn
	c.mu.Unlock()
}

func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Toggle pauses a playing track or resumes a paused one from its current
// position. Resuming a track that has reached its end starts it over. A
// controller without a track stays paused.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		c.playing = false
		return
	}
	if c.track.Frames() == 0 {
		return
	}
	if c.pos >= c.track.Frames() {
		c.pos = 0
	}
	c.playing = true
}

// Stop pauses, rewinds to the start and resets the position indicator.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.playing = false
	c.pos = 0
	ind := c.indicator
	c.mu.Unlock()

	if ind != nil {
		ind.SetPosition(0)
	}
}

func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

func (c *Controller) ToggleMute() {
	c.mu.Lock()
	c.muted = !c.muted
	c.mu.Unlock()
}

func (c *Controller) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// SetVolume sets the linear output gain, clamped to [0,1].
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = clamp01(v)
	c.mu.Unlock()
}

func (c *Controller) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Gain is the factor applied to output samples.
func (c *Controller) Gain() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gain()
}

func (c *Controller) gain() float32 {
	if c.muted {
		return 0
	}
	return float32(c.volume)
}

// Seek moves the position by d, clamped to the track bounds.
func (c *Controller) Seek(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := c.pos + c.track.timeFrames(d)
	c.pos = max(0, min(pos, c.track.Frames()))
}

func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.track.frameTime(c.pos)
}

func (c *Controller) Duration() time.Duration {
	return c.track.Duration()
}

// Fraction is the playback position relative to the track length.
func (c *Controller) Fraction() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.track.Frames()
	if n == 0 {
		return 0
	}
	return float64(c.pos) / float64(n)
}

// Read fills out with the next interleaved samples scaled by the gain.
// While paused it writes silence. Reaching the end of the track pauses.
func (c *Controller) Read(out []float32) {
	c.mu.Lock()
	n := c.fill(out)
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
	tap := c.tap
	c.mu.Unlock()

	if tap != nil {
		tap(out)
	}
}

// fill copies samples into out and returns how many were written.
func (c *Controller) fill(out []float32) int {
	if !c.playing || c.track == nil || c.track.Channels <= 0 {
		return 0
	}
	ch := c.track.Channels
	start := c.pos * ch
	n := min(len(out)/ch*ch, len(c.track.Samples)-start)
	g := c.gain()
	for i := 0; i < n; i++ {
		out[i] = c.track.Samples[start+i] * g
	}
	c.pos += n / ch
	if c.pos >= c.track.Frames() {
		c.playing = false
	}
	return n
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
