// Package app owns the top-level render loop.
package app

import (
	"context"
	"log"
	"time"
)

// Display is the window the loop presents to.
type Display interface {
	ShouldClose() bool
	EndFrame()
	Time() float64 // seconds
	SetTitle(title string)
}

// Scene draws one frame for a timestamp measured from the start of the run.
type Scene interface {
	Frame(ts time.Duration)
}

// Strip is refreshed once per frame and shown in the window title.
type Strip interface {
	Refresh()
	Status() string
}

type App struct {
	display   Display
	scene     Scene
	strip     Strip
	title     string
	maxFrames int
	frames    int
}

// New creates a loop over display and scene. strip may be nil. A maxFrames
// of zero runs until the window closes or the context is cancelled.
func New(display Display, scene Scene, strip Strip, title string, maxFrames int) *App {
	return &App{
		display:   display,
		scene:     scene,
		strip:     strip,
		title:     title,
		maxFrames: maxFrames,
	}
}

func (a *App) Frames() int { return a.frames }

// Run drives frames until ctx is done, the window is closed or the frame
// limit is reached. It returns the context error when cancelled.
func (a *App) Run(ctx context.Context) error {
	start := a.display.Time()
	a.display.SetTitle(a.title)
	shown := a.title

	log.Println("Starting interactive render loop...")
	for !a.display.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.Printf("Render loop stopped after %d frames: %v", a.frames, err)
			return err
		}
		if a.maxFrames > 0 && a.frames >= a.maxFrames {
			break
		}

		ts := time.Duration((a.display.Time() - start) * float64(time.Second))
		a.scene.Frame(ts)

		if a.strip != nil {
			a.strip.Refresh()
			if title := a.title + " | " + a.strip.Status(); title != shown {
				a.display.SetTitle(title)
				shown = title
			}
		}

		a.display.EndFrame()
		a.frames++
	}
	log.Printf("Render loop finished after %d frames", a.frames)
	return nil
}
