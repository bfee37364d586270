package audio

// We'll be using portaudio for audio output.
// macos:	brew install portaudio
// debian:	sudo apt-get install portaudio19-dev
// windows:	pacman -S mingw-w64-x86_64-portaudio

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Sink pulls samples from a Source and delivers them to an output.
type Sink interface {
	Start(src Source) error
	Stop() error
}

// PortAudioSink plays through the default output device.
type PortAudioSink struct {
	channels    int
	sampleRate  int
	stream      *portaudio.Stream
	isStreaming bool
}

func NewPortAudioSink(channels, sampleRate int) (*PortAudioSink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	return &PortAudioSink{channels: channels, sampleRate: sampleRate}, nil
}

func (s *PortAudioSink) Start(src Source) error {
	// The callback runs on PortAudio's thread and must not block.
	callback := func(out []float32) {
		src.Read(out)
	}
	stream, err := portaudio.OpenDefaultStream(0, s.channels, float64(s.sampleRate), portaudio.FramesPerBufferUnspecified, callback)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	s.stream = stream
	s.isStreaming = true
	log.Printf("Audio output started: %d Hz, %d channels", s.sampleRate, s.channels)
	return nil
}

func (s *PortAudioSink) Stop() error {
	if !s.isStreaming {
		return portaudio.Terminate()
	}
	s.isStreaming = false
	if err := s.stream.Close(); err != nil {
		portaudio.Terminate()
		return err
	}
	return portaudio.Terminate()
}

// NullSink discards output but still pulls from its source in real time, so
// playback position advances when no device is available.
type NullSink struct {
	channels   int
	sampleRate int
	period     time.Duration
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewNullSink(channels, sampleRate int) *NullSink {
	return &NullSink{
		channels:   channels,
		sampleRate: sampleRate,
		period:     20 * time.Millisecond,
	}
}

func (s *NullSink) Start(src Source) error {
	if s.cancel != nil {
		return fmt.Errorf("null sink already started")
	}
	if s.channels <= 0 || s.sampleRate <= 0 {
		// Nothing to pull at; produce silence forever.
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	frames := int(time.Duration(s.sampleRate) * s.period / time.Second)
	buf := make([]float32, max(frames, 1)*s.channels)
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				src.Read(buf)
			}
		}
	}()
	return nil
}

func (s *NullSink) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	return nil
}
