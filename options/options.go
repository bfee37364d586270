package options

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Options struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
	Frames int    `yaml:"frames"` // Stop after this many frames; 0 runs until the window closes
	Seed   int64  `yaml:"seed"`   // Population seed; 0 picks one from the clock

	Objects int `yaml:"objects"`

	Audio AudioOptions `yaml:"audio"`
}

type AudioOptions struct {
	File       string  `yaml:"file"` // Any file ffmpeg can decode; empty plays nothing
	FFMPEGPath string  `yaml:"ffmpeg_path"`
	Muted      bool    `yaml:"muted"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
	Channels   int     `yaml:"channels"`
	Autoplay   bool    `yaml:"autoplay"`
}

func Default() *Options {
	return &Options{
		Width:   1280,
		Height:  720,
		Title:   "orbits",
		VSync:   true,
		Objects: 200,
		Audio: AudioOptions{
			Volume:     1,
			SampleRate: 44100,
			Channels:   2,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values. The result is not validated, so command-line
// overrides can still be applied.
func Load(path string) (*Options, error) {
	o := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return o, nil
}

func (o *Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height))
	}
	if o.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d must not be negative", o.Frames))
	}
	if o.Objects <= 0 {
		errs = append(errs, fmt.Errorf("objects %d must be positive", o.Objects))
	}
	if o.Audio.Volume < 0 || o.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v must be within [0,1]", o.Audio.Volume))
	}
	if o.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate %d must be positive", o.Audio.SampleRate))
	}
	if o.Audio.Channels < 1 || o.Audio.Channels > 2 {
		errs = append(errs, fmt.Errorf("audio channels %d must be 1 or 2", o.Audio.Channels))
	}
	return errors.Join(errs...)
}
