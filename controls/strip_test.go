package controls

import (
	"strings"
	"testing"
	"time"

	"github.com/richinsley/orbits/audio"
)

func newTestStrip(analyzer *audio.Analyzer) (*Strip, *audio.Controller) {
	// 100 s of mono silence at 100 Hz.
	track := &audio.Track{Samples: make([]float32, 10000), Channels: 1, SampleRate: 100}
	ctrl := audio.NewController(track)
	return New(ctrl, analyzer), ctrl
}

func TestStatusPaused(t *testing.T) {
	s, _ := newTestStrip(nil)
	want := "❚❚ 00:00/01:40 [--------------------] vol 100%"
	if got := s.Status(); got != want {
		t.Fatalf("status %q, want %q", got, want)
	}
}

func TestHandleKey(t *testing.T) {
	s, ctrl := newTestStrip(nil)

	if !s.HandleKey("space") || !ctrl.Playing() {
		t.Fatal("space should start playback")
	}
	if !s.HandleKey("m") || !ctrl.Muted() {
		t.Fatal("m should mute")
	}
	s.HandleKey("down")
	s.HandleKey("down")
	if v := ctrl.Volume(); v < 0.79 || v > 0.81 {
		t.Fatalf("volume after two steps down %v", v)
	}
	s.HandleKey("up")
	if v := ctrl.Volume(); v < 0.89 || v > 0.91 {
		t.Fatalf("volume after a step up %v", v)
	}
	if s.HandleKey("q") {
		t.Fatal("q is not bound")
	}

	got := s.Status()
	if !strings.HasPrefix(got, "▶ ") || !strings.Contains(got, "vol 90%") || !strings.HasSuffix(got, " muted") {
		t.Fatalf("status %q", got)
	}
}

func TestSeekKeysMoveIndicator(t *testing.T) {
	s, ctrl := newTestStrip(nil)
	s.HandleKey("right")
	s.HandleKey("right")
	if ctrl.Position() != 10*time.Second {
		t.Fatalf("position %v", ctrl.Position())
	}
	if s.Position() != 0.1 {
		t.Fatalf("seek value %v", s.Position())
	}
	if got := s.Status(); !strings.Contains(got, "00:10/01:40 [==------------------]") {
		t.Fatalf("status %q", got)
	}
	s.HandleKey("left")
	s.HandleKey("left")
	s.HandleKey("left")
	if ctrl.Position() != 0 {
		t.Fatalf("seek back past start: %v", ctrl.Position())
	}
}

func TestStopResetsIndicator(t *testing.T) {
	s, ctrl := newTestStrip(nil)
	ctrl.Seek(50 * time.Second)
	s.Refresh()
	if s.Position() != 0.5 {
		t.Fatalf("refresh mirrored %v", s.Position())
	}
	s.HandleKey("s")
	if s.Position() != 0 || ctrl.Position() != 0 || ctrl.Playing() {
		t.Fatalf("after stop: seek %v position %v playing %v", s.Position(), ctrl.Position(), ctrl.Playing())
	}
}

func TestStatusMeter(t *testing.T) {
	s, _ := newTestStrip(audio.NewAnalyzer(1))
	got := s.Status()
	if !strings.HasSuffix(got, " ▁▁▁▁▁▁▁▁") {
		t.Fatalf("silent meter in %q", got)
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{3*time.Minute + 45*time.Second, "03:45"},
	}
	for _, tt := range tests {
		if got := clock(tt.d); got != tt.want {
			t.Errorf("clock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
