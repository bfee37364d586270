package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/richinsley/orbits/graphics"
)

// Rand is the source of randomness used to build a population.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Material is the per-object uniform set.
type Material struct {
	ColorMult      mgl32.Vec4
	Diffuse        graphics.Texture
	Specular       mgl32.Vec4
	Shininess      float32
	SpecularFactor float32
}

func (m *Material) Each(fn func(name string, value any)) {
	fn("u_colorMult", m.ColorMult)
	fn("u_diffuse", m.Diffuse)
	fn("u_specular", m.Specular)
	fn("u_shininess", m.Shininess)
	fn("u_specularFactor", m.SpecularFactor)
}

// Object is one orbiting sphere. It is immutable after Populate.
type Object struct {
	Radius       float32
	XRotation    float32
	YRotation    float32
	Hue          float64
	TextureIndex int
	Material     Material
}

// WorldMatrix is Rx(xSeed*clock) * Ry(ySeed*clock) * T(0, 0, radius).
func (o *Object) WorldMatrix(clock float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(o.XRotation * clock).
		Mul4(mgl32.HomogRotate3DY(o.YRotation * clock)).
		Mul4(mgl32.Translate3D(0, 0, o.Radius))
}

// Population is the fixed set of objects drawn every frame.
type Population struct {
	BaseHue float64
	Objects []Object
}

func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Populate draws cfg.Objects objects from r. The base hue is drawn once,
// then each object consumes radius, x seed, y seed, hue, texture index,
// shininess and specular factor in that order, so a seeded source replays
// the same scene.
func Populate(cfg Config, textures []graphics.Texture, r Rand) (*Population, error) {
	if len(textures) == 0 {
		return nil, errNoTextures
	}
	if cfg.Objects < 0 {
		return nil, fmt.Errorf("object count %d must not be negative", cfg.Objects)
	}
	p := &Population{
		BaseHue: between(r, 0, cfg.BaseHueRange),
		Objects: make([]Object, 0, cfg.Objects),
	}
	for i := 0; i < cfg.Objects; i++ {
		radius := between(r, 0, cfg.MaxOrbitRadius)
		xRot := between(r, 0, 2*math.Pi)
		yRot := between(r, 0, math.Pi)
		hue := between(r, p.BaseHue, p.BaseHue+cfg.HueBand)
		texIdx := r.Intn(len(textures))
		shininess := between(r, 0, cfg.MaxShininess)
		specFactor := between(r, 0, 1)

		c := colorful.Hsv(math.Mod(hue, 360), cfg.Saturation, cfg.Value)
		p.Objects = append(p.Objects, Object{
			Radius:       float32(radius),
			XRotation:    float32(xRot),
			YRotation:    float32(yRot),
			Hue:          hue,
			TextureIndex: texIdx,
			Material: Material{
				ColorMult:      mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1},
				Diffuse:        textures[texIdx],
				Specular:       mgl32.Vec4{1, 1, 1, 1},
				Shininess:      float32(shininess),
				SpecularFactor: float32(specFactor),
			},
		})
	}
	return p, nil
}
