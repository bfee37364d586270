package options

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orbits.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 640
seed: 42
audio:
  file: song.mp3
  volume: 0.5
  muted: true
`)
	o, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if o.Width != 640 || o.Height != 720 {
		t.Errorf("size %dx%d", o.Width, o.Height)
	}
	if o.Seed != 42 || o.Objects != 200 {
		t.Errorf("seed %d objects %d", o.Seed, o.Objects)
	}
	if o.Audio.File != "song.mp3" || o.Audio.Volume != 0.5 || !o.Audio.Muted {
		t.Errorf("audio %+v", o.Audio)
	}
	if o.Audio.SampleRate != 44100 || o.Audio.Channels != 2 {
		t.Errorf("audio format defaults lost: %+v", o.Audio)
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	path := writeConfig(t, "objects: 0\naudio:\n  volume: 3\n")
	o, err := Load(path)
	if err != nil {
		t.Fatalf("load should not validate: %v", err)
	}
	err = o.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"objects", "volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "width: [1, 2\n")); err == nil {
		t.Fatal("expected parse error")
	}
}
