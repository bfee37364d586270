package audio

import (
	"testing"
	"time"
)

type recordingIndicator struct {
	calls []float64
}

func (r *recordingIndicator) SetPosition(f float64) { r.calls = append(r.calls, f) }

// constantTrack returns a mono track of n frames at 10 Hz, every sample v.
func constantTrack(n int, v float32) *Track {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return &Track{Samples: s, Channels: 1, SampleRate: 10}
}

func TestControllerStartsPaused(t *testing.T) {
	c := NewController(constantTrack(10, 0.5))
	if c.Playing() {
		t.Fatal("new controller should be paused")
	}
	out := []float32{9, 9, 9}
	c.Read(out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %v while paused", i, v)
		}
	}
	if c.Position() != 0 {
		t.Fatalf("position advanced while paused: %v", c.Position())
	}
}

func TestControllerToggle(t *testing.T) {
	c := NewController(constantTrack(10, 0.5))
	c.Toggle()
	if !c.Playing() {
		t.Fatal("toggle should start playback")
	}
	c.Toggle()
	if c.Playing() {
		t.Fatal("second toggle should pause")
	}
}

func TestControllerRead(t *testing.T) {
	c := NewController(constantTrack(10, 0.5))
	c.Toggle()

	out := make([]float32, 4)
	c.Read(out)
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
	if got := c.Position(); got != 400*time.Millisecond {
		t.Fatalf("position %v, want 400ms", got)
	}

	c.SetVolume(0.5)
	c.Read(out[:2])
	if out[0] != 0.25 {
		t.Fatalf("half volume sample %v", out[0])
	}

	c.SetMuted(true)
	c.Read(out[:2])
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("muted samples %v", out[:2])
	}
	if got := c.Position(); got != 800*time.Millisecond {
		t.Fatalf("position should advance while muted, got %v", got)
	}
}

func TestControllerEndOfTrack(t *testing.T) {
	c := NewController(constantTrack(5, 1))
	c.Toggle()

	out := make([]float32, 8)
	c.Read(out)
	for i := 0; i < 5; i++ {
		if out[i] != 1 {
			t.Fatalf("sample %d = %v", i, out[i])
		}
	}
	for i := 5; i < 8; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d past the end = %v", i, out[i])
		}
	}
	if c.Playing() {
		t.Fatal("controller should pause at the end of the track")
	}
	if c.Fraction() != 1 {
		t.Fatalf("fraction %v at end", c.Fraction())
	}

	c.Toggle()
	if !c.Playing() || c.Position() != 0 {
		t.Fatalf("toggle at end should restart, playing=%v pos=%v", c.Playing(), c.Position())
	}
}

func TestControllerStop(t *testing.T) {
	ind := &recordingIndicator{}
	c := NewController(constantTrack(10, 1))
	c.SetIndicator(ind)
	c.Toggle()
	c.Read(make([]float32, 3))

	c.Stop()
	if c.Playing() {
		t.Fatal("stop should pause")
	}
	if c.Position() != 0 {
		t.Fatalf("stop should rewind, position %v", c.Position())
	}
	if len(ind.calls) != 1 || ind.calls[0] != 0 {
		t.Fatalf("indicator calls %v", ind.calls)
	}

	// Stop while paused is idempotent.
	c.Stop()
	if c.Playing() || c.Position() != 0 {
		t.Fatal("second stop changed state")
	}
}

func TestControllerVolumeAndMute(t *testing.T) {
	c := NewController(nil)
	if c.Gain() != 1 {
		t.Fatalf("default gain %v", c.Gain())
	}
	c.SetVolume(2)
	if c.Volume() != 1 {
		t.Fatalf("volume not clamped high: %v", c.Volume())
	}
	c.SetVolume(-1)
	if c.Volume() != 0 {
		t.Fatalf("volume not clamped low: %v", c.Volume())
	}
	c.SetVolume(0.3)
	c.ToggleMute()
	if !c.Muted() || c.Gain() != 0 {
		t.Fatalf("muted gain %v", c.Gain())
	}
	c.ToggleMute()
	if c.Muted() || c.Gain() != float32(0.3) {
		t.Fatalf("unmuted gain %v", c.Gain())
	}
}

func TestControllerSeek(t *testing.T) {
	c := NewController(constantTrack(100, 1)) // 10s at 10 Hz
	c.Seek(3 * time.Second)
	if c.Position() != 3*time.Second {
		t.Fatalf("position %v", c.Position())
	}
	c.Seek(-5 * time.Second)
	if c.Position() != 0 {
		t.Fatalf("seek before start: %v", c.Position())
	}
	c.Seek(time.Minute)
	if c.Position() != c.Duration() {
		t.Fatalf("seek past end: %v", c.Position())
	}
}

func TestControllerTap(t *testing.T) {
	c := NewController(constantTrack(10, 0.5))
	var got []float32
	c.SetTap(func(b []float32) { got = append(got, b...) })
	c.Toggle()
	c.Read(make([]float32, 2))
	if len(got) != 2 || got[0] != 0.5 {
		t.Fatalf("tap received %v", got)
	}
}

func TestControllerNilTrack(t *testing.T) {
	c := NewController(nil)
	c.Toggle()
	if c.Playing() {
		t.Fatal("toggle without a track should stay paused")
	}
	out := []float32{1, 1}
	c.Read(out)
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("nil track produced %v", out)
	}
	if c.Duration() != 0 || c.Fraction() != 0 {
		t.Fatal("nil track should have no length")
	}
}

func TestControllerEmptyTrackStaysPaused(t *testing.T) {
	c := NewController(&Track{Channels: 2, SampleRate: 44100})
	c.Toggle()
	if c.Playing() {
		t.Fatal("toggle on an empty track should stay paused")
	}
}

func TestNullSinkPulls(t *testing.T) {
	c := NewController(&Track{Samples: make([]float32, 10000), Channels: 1, SampleRate: 1000})
	c.Toggle()
	s := NewNullSink(1, 1000)
	if err := s.Start(c); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if c.Position() == 0 {
		t.Fatal("null sink did not advance playback")
	}
}
