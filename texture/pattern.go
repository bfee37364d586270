// Package texture synthesizes the small procedural images the scene samples.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind names a procedural pattern.
type Kind string

const (
	Stripe  Kind = "stripe"
	Checker Kind = "checker"
	Circle  Kind = "circle"
)

// ringWidth is the thickness in pixels of each band of a circle pattern.
const ringWidth = 4

// Pattern describes a two-colour procedural texture. Colours are CSS hex
// strings (#rgb or #rrggbb). Zero Width/Height select the per-kind default.
type Pattern struct {
	Kind   Kind
	Color1 string
	Color2 string
	Width  int
	Height int
}

func (p Pattern) size() (int, int) {
	w, h := p.Width, p.Height
	if w > 0 && h > 0 {
		return w, h
	}
	switch p.Kind {
	case Circle:
		return 128, 128
	default:
		return 4, 4
	}
}

// Image renders the pattern into a new RGBA image.
func (p Pattern) Image() (*image.RGBA, error) {
	c1, err := ParseColor(p.Color1)
	if err != nil {
		return nil, fmt.Errorf("%s texture color1: %w", p.Kind, err)
	}
	c2, err := ParseColor(p.Color2)
	if err != nil {
		return nil, fmt.Errorf("%s texture color2: %w", p.Kind, err)
	}

	w, h := p.size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c1), image.Point{}, draw.Src)
	fg := image.NewUniform(c2)

	switch p.Kind {
	case Stripe:
		draw.Draw(img, image.Rect(0, 0, w, h/2), fg, image.Point{}, draw.Src)
	case Checker:
		draw.Draw(img, image.Rect(0, 0, w/2, h/2), fg, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(w/2, h/2, w, h), fg, image.Point{}, draw.Src)
	case Circle:
		drawRings(img, c1, c2)
	default:
		return nil, fmt.Errorf("unknown texture pattern %q", p.Kind)
	}
	return img, nil
}

// drawRings paints concentric bands around the image centre, alternating
// colours every ringWidth pixels, c2 outermost.
func drawRings(img *image.RGBA, c1, c2 color.RGBA) {
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	maxR := min(b.Dx(), b.Dy()) / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d2 := dx*dx + dy*dy
			if d2 >= float64(maxR*maxR) {
				continue
			}
			// distance in from the outer edge, in whole bands
			band := 0
			for r := maxR; r > 0; r -= ringWidth {
				if d2 < float64(r*r) {
					band++
					continue
				}
				break
			}
			if band%2 == 1 {
				img.SetRGBA(x, y, c2)
			} else {
				img.SetRGBA(x, y, c1)
			}
		}
	}
}

// ParseColor parses a CSS hex colour into an opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
