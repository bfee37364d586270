package main

import (
	"log"

	audio "github.com/richinsley/orbits/audio"
	options "github.com/richinsley/orbits/options"
)

// player wires the background track to an output device. Every failure
// degrades to silence; the scene runs regardless.
type player struct {
	ctrl     *audio.Controller
	analyzer *audio.Analyzer
	sink     audio.Sink
}

func newPlayer(o options.AudioOptions) *player {
	var track *audio.Track
	if o.File != "" {
		t, err := audio.Decode(o.File, audio.DecodeOptions{
			FFMPEGPath: o.FFMPEGPath,
			SampleRate: o.SampleRate,
			Channels:   o.Channels,
		})
		if err != nil {
			log.Printf("Could not decode %s: %v. Continuing without music.", o.File, err)
		} else {
			track = t
			log.Printf("Loaded %s (%s)", o.File, t.Duration())
		}
	}

	p := &player{
		ctrl:     audio.NewController(track),
		analyzer: audio.NewAnalyzer(o.Channels),
	}
	p.ctrl.SetVolume(o.Volume)
	p.ctrl.SetMuted(o.Muted)
	p.ctrl.SetTap(p.analyzer.Write)

	if track != nil {
		sink, err := audio.NewPortAudioSink(o.Channels, o.SampleRate)
		if err == nil {
			if err = sink.Start(p.ctrl); err != nil {
				sink.Stop()
			} else {
				p.sink = sink
			}
		}
		if err != nil {
			log.Printf("Could not open audio output: %v. Using silent fallback.", err)
		}
	}
	if p.sink == nil {
		null := audio.NewNullSink(o.Channels, o.SampleRate)
		if err := null.Start(p.ctrl); err != nil {
			log.Printf("Could not start silent output: %v", err)
		}
		p.sink = null
	}

	if track != nil && o.Autoplay {
		p.ctrl.Toggle()
	}
	return p
}

func (p *player) Close() {
	if err := p.sink.Stop(); err != nil {
		log.Printf("Error stopping audio output: %v", err)
	}
}
