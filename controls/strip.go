// Package controls binds keys to the audio controller and renders its state
// as a one-line status.
package controls

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/richinsley/orbits/audio"
)

// Action is something the user can ask the strip to do.
type Action int

const (
	Toggle Action = iota
	Stop
	ToggleMute
	VolumeUp
	VolumeDown
	SeekForward
	SeekBack
)

// DefaultBindings maps key names to actions.
var DefaultBindings = map[string]Action{
	"space": Toggle,
	"s":     Stop,
	"m":     ToggleMute,
	"up":    VolumeUp,
	"down":  VolumeDown,
	"right": SeekForward,
	"left":  SeekBack,
}

const (
	volumeStep = 0.1
	seekStep   = 5 * time.Second
	barWidth   = 20
	meterBands = 8
)

var meterGlyphs = []rune("▁▂▃▄▅▆▇█")

// Strip is the on-screen control surface for one audio controller. It is
// only used from the UI thread.
type Strip struct {
	ctrl     *audio.Controller
	analyzer *audio.Analyzer
	bindings map[string]Action
	seek     float64
}

// New creates a strip and registers it as ctrl's position indicator. The
// analyzer may be nil, in which case no meter is shown.
func New(ctrl *audio.Controller, analyzer *audio.Analyzer) *Strip {
	s := &Strip{
		ctrl:     ctrl,
		analyzer: analyzer,
		bindings: DefaultBindings,
	}
	ctrl.SetIndicator(s)
	return s
}

// SetPosition sets the seek value.
func (s *Strip) SetPosition(fraction float64) {
	s.seek = max(0, min(fraction, 1))
}

func (s *Strip) Position() float64 { return s.seek }

// Refresh mirrors the controller's playback position into the seek value.
func (s *Strip) Refresh() {
	s.SetPosition(s.ctrl.Fraction())
}

// HandleKey runs the action bound to key and reports whether one was bound.
func (s *Strip) HandleKey(key string) bool {
	a, ok := s.bindings[key]
	if !ok {
		return false
	}
	s.Do(a)
	return true
}

func (s *Strip) Do(a Action) {
	switch a {
	case Toggle:
		s.ctrl.Toggle()
	case Stop:
		s.ctrl.Stop()
	case ToggleMute:
		s.ctrl.ToggleMute()
	case VolumeUp:
		s.ctrl.SetVolume(s.ctrl.Volume() + volumeStep)
	case VolumeDown:
		s.ctrl.SetVolume(s.ctrl.Volume() - volumeStep)
	case SeekForward:
		s.ctrl.Seek(seekStep)
		s.Refresh()
	case SeekBack:
		s.ctrl.Seek(-seekStep)
		s.Refresh()
	}
}

// Status renders the strip, e.g. "▶ 00:12/03:45 [====----] vol 80% muted ▁▃▅".
func (s *Strip) Status() string {
	var b strings.Builder
	if s.ctrl.Playing() {
		b.WriteString("▶ ")
	} else {
		b.WriteString("❚❚ ")
	}
	fmt.Fprintf(&b, "%s/%s ", clock(s.ctrl.Position()), clock(s.ctrl.Duration()))

	filled := int(math.Round(s.seek * barWidth))
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	b.WriteString(strings.Repeat("-", barWidth-filled))
	b.WriteByte(']')

	fmt.Fprintf(&b, " vol %d%%", int(math.Round(s.ctrl.Volume()*100)))
	if s.ctrl.Muted() {
		b.WriteString(" muted")
	}
	if s.analyzer != nil {
		b.WriteByte(' ')
		b.WriteString(meter(s.analyzer.Bands(meterBands)))
	}
	return b.String()
}

func meter(levels []float64) string {
	out := make([]rune, len(levels))
	top := len(meterGlyphs) - 1
	for i, l := range levels {
		out[i] = meterGlyphs[int(math.Round(max(0, min(l, 1))*float64(top)))]
	}
	return string(out)
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}
