package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/orbits/texture"
)

// Config holds everything the driver needs to build and animate the scene.
type Config struct {
	Objects int

	SphereRadius       float32
	SphereAxisSegments int
	SphereHeightSegs   int

	VertexShader   string
	FragmentShader string
	Textures       []texture.Pattern

	MaxOrbitRadius float64
	BaseHueRange   float64
	HueBand        float64
	Saturation     float64
	Value          float64
	MaxShininess   float64

	// ClockScale converts a timestamp in milliseconds into clock units.
	ClockScale  float64
	ClockOffset float64

	FieldOfView float32 // degrees
	Near, Far   float32
	Eye         mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3

	LightWorldPos mgl32.Vec3
	LightColor    mgl32.Vec4
}

// DefaultConfig returns the stock scene: 200 spheres orbiting the origin.
func DefaultConfig() Config {
	return Config{
		Objects:            200,
		SphereRadius:       10,
		SphereAxisSegments: 48,
		SphereHeightSegs:   24,
		VertexShader:       "vertex-shader-3d",
		FragmentShader:     "fragment-shader-3d",
		Textures: []texture.Pattern{
			{Kind: texture.Stripe, Color1: "#FFF", Color2: "#CCC"},
			{Kind: texture.Checker, Color1: "#1E1E1E", Color2: "#CCC"},
			{Kind: texture.Circle, Color1: "#FFF", Color2: "#CCC"},
		},
		MaxOrbitRadius: 150,
		BaseHueRange:   240,
		HueBand:        120,
		Saturation:     0.5,
		Value:          1,
		MaxShininess:   500,
		ClockScale:     0.0001,
		ClockOffset:    5,
		FieldOfView:    60,
		Near:           1,
		Far:            2000,
		Eye:            mgl32.Vec3{0, 0, 100},
		Target:         mgl32.Vec3{0, 0, 0},
		Up:             mgl32.Vec3{0, 1, 0},
		LightWorldPos:  mgl32.Vec3{-50, 40, 100},
		LightColor:     mgl32.Vec4{1, 1, 2, 1},
	}
}

// Clock maps a frame timestamp onto the animation clock. It holds no state,
// so the same timestamp always yields the same clock.
func (c Config) Clock(ts time.Duration) float64 {
	ms := float64(ts) / float64(time.Millisecond)
	return ms*c.ClockScale + c.ClockOffset
}

// Projection returns the perspective matrix for the given surface size.
func (c Config) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FieldOfView), aspect, c.Near, c.Far)
}

// CameraMatrix places the camera at Eye looking at Target. Its inverse is
// the view matrix.
func (c Config) CameraMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up).Inv()
}
