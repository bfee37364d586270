package texture

import (
	"image/color"
	"testing"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	grey  = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	dark  = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FFF", white},
		{"#CCC", grey},
		{"#1E1E1E", dark},
		{"#1e1e1e", dark},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("white"); err == nil {
		t.Errorf("expected error for named colour")
	}
}

func TestStripe(t *testing.T) {
	img, err := Pattern{Kind: Stripe, Color1: "#FFF", Color2: "#CCC"}.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("size = %v, want 4x4", b)
	}
	if got := img.RGBAAt(0, 0); got != grey {
		t.Errorf("top row = %v, want color2", got)
	}
	if got := img.RGBAAt(3, 3); got != white {
		t.Errorf("bottom row = %v, want color1", got)
	}
}

func TestChecker(t *testing.T) {
	img, err := Pattern{Kind: Checker, Color1: "#1E1E1E", Color2: "#CCC"}.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, grey},
		{3, 0, dark},
		{0, 3, dark},
		{3, 3, grey},
	}
	for _, c := range cases {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCircle(t *testing.T) {
	img, err := Pattern{Kind: Circle, Color1: "#FFF", Color2: "#CCC"}.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("size = %v, want 128x128", b)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("corner = %v, want background color1", got)
	}
	// just inside the outer edge is the first, color2, band
	if got := img.RGBAAt(64, 1); got != grey {
		t.Errorf("outer band = %v, want color2", got)
	}
	// the next band in alternates back
	if got := img.RGBAAt(64, 5); got != white {
		t.Errorf("second band = %v, want color1", got)
	}
}

func TestUnknownKind(t *testing.T) {
	if _, err := (Pattern{Kind: "plaid", Color1: "#FFF", Color2: "#000"}).Image(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestBadColour(t *testing.T) {
	if _, err := (Pattern{Kind: Stripe, Color1: "nope", Color2: "#000"}).Image(); err == nil {
		t.Fatalf("expected error for bad colour")
	}
}
