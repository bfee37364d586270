package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	app "github.com/richinsley/orbits/app"
	controls "github.com/richinsley/orbits/controls"
	"github.com/richinsley/orbits/glfwcontext"
	"github.com/richinsley/orbits/graphics"
	options "github.com/richinsley/orbits/options"
	renderer "github.com/richinsley/orbits/renderer"
	scene "github.com/richinsley/orbits/scene"
	"github.com/spf13/cobra"
)

var (
	configPath string
	flagOpts   = options.Default()
)

var rootCmd = &cobra.Command{
	Use:          "orbits",
	Short:        "Render a field of textured spheres orbiting the origin, with background music",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	runtime.LockOSThread()

	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.IntVar(&flagOpts.Width, "width", flagOpts.Width, "Window width")
	f.IntVar(&flagOpts.Height, "height", flagOpts.Height, "Window height")
	f.BoolVar(&flagOpts.VSync, "vsync", flagOpts.VSync, "Synchronize buffer swaps with the display")
	f.IntVar(&flagOpts.Frames, "frames", flagOpts.Frames, "Stop after this many frames (0 runs until the window closes)")
	f.Int64Var(&flagOpts.Seed, "seed", flagOpts.Seed, "Population seed (0 picks one from the clock)")
	f.IntVar(&flagOpts.Objects, "objects", flagOpts.Objects, "Number of orbiting spheres")
	f.StringVar(&flagOpts.Audio.File, "audio", flagOpts.Audio.File, "Background music file")
	f.StringVar(&flagOpts.Audio.FFMPEGPath, "ffmpeg", flagOpts.Audio.FFMPEGPath, "Path to ffmpeg executable")
	f.BoolVar(&flagOpts.Audio.Muted, "muted", flagOpts.Audio.Muted, "Start with audio muted")
	f.Float64Var(&flagOpts.Audio.Volume, "volume", flagOpts.Audio.Volume, "Initial volume in [0,1]")
	f.BoolVar(&flagOpts.Audio.Autoplay, "autoplay", flagOpts.Audio.Autoplay, "Start playing the music immediately")
}

// resolveOptions loads the config file, if any, then applies the flags the
// user set explicitly.
func resolveOptions(cmd *cobra.Command) (*options.Options, error) {
	o := options.Default()
	if configPath != "" {
		var err error
		if o, err = options.Load(configPath); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("width") {
		o.Width = flagOpts.Width
	}
	if f.Changed("height") {
		o.Height = flagOpts.Height
	}
	if f.Changed("vsync") {
		o.VSync = flagOpts.VSync
	}
	if f.Changed("frames") {
		o.Frames = flagOpts.Frames
	}
	if f.Changed("seed") {
		o.Seed = flagOpts.Seed
	}
	if f.Changed("objects") {
		o.Objects = flagOpts.Objects
	}
	if f.Changed("audio") {
		o.Audio.File = flagOpts.Audio.File
	}
	if f.Changed("ffmpeg") {
		o.Audio.FFMPEGPath = flagOpts.Audio.FFMPEGPath
	}
	if f.Changed("muted") {
		o.Audio.Muted = flagOpts.Audio.Muted
	}
	if f.Changed("volume") {
		o.Audio.Volume = flagOpts.Audio.Volume
	}
	if f.Changed("autoplay") {
		o.Audio.Autoplay = flagOpts.Audio.Autoplay
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return o, nil
}

func run(cmd *cobra.Command, args []string) error {
	o, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	err = runScene(o)
	if errors.Is(err, graphics.ErrContextUnavailable) {
		log.Printf("Nothing to draw: %v", err)
		return nil
	}
	return err
}

func runScene(o *options.Options) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	win, err := glfwcontext.New(o, true)
	if err != nil {
		return err
	}
	defer win.Shutdown()

	r, err := renderer.NewRenderer(win)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Population seed: %d", seed)

	cfg := scene.DefaultConfig()
	cfg.Objects = o.Objects
	driver, err := scene.New(r, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to set up scene: %w", err)
	}

	player := newPlayer(o.Audio)
	defer player.Close()

	strip := controls.New(player.ctrl, player.analyzer)
	for name := range controls.DefaultBindings {
		key, ok := glfwcontext.LookupKey(name)
		if !ok {
			continue
		}
		win.RegisterKeyCallback(key, func() { strip.HandleKey(name) })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.New(win, driver, strip, o.Title, o.Frames).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
