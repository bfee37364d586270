package scene

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/orbits/graphics"
	"github.com/richinsley/orbits/texture"
)

var errNoTextures = errors.New("scene needs at least one texture")

// Graphics is the backend the driver renders through. renderer.Renderer
// implements it on top of OpenGL.
type Graphics interface {
	BuildSphere(radius float32, axis, height int) (graphics.Mesh, error)
	LinkProgram(vertexName, fragmentName string) (graphics.Program, error)
	MakePatternTexture(p texture.Pattern) (graphics.Texture, error)
	ResizeToDisplay() (width, height int)
	BeginFrame(width, height int)
	BindIndices(mesh graphics.Mesh)
	DrawElements(mesh graphics.Mesh)
}

// Driver owns the scene's GPU resources, its population and the per-draw
// scratch uniforms.
type Driver struct {
	gfx      Graphics
	cfg      Config
	mesh     graphics.Mesh
	program  graphics.Program
	textures []graphics.Texture
	pop      *Population

	shared  SharedUniforms
	scratch ObjectUniforms
	frames  uint64
}

// New performs the one-time setup: sphere mesh, shader program, the pattern
// textures and the object population.
func New(gfx Graphics, cfg Config, r Rand) (*Driver, error) {
	if gfx == nil {
		return nil, graphics.ErrContextUnavailable
	}

	mesh, err := gfx.BuildSphere(cfg.SphereRadius, cfg.SphereAxisSegments, cfg.SphereHeightSegs)
	if err != nil {
		return nil, fmt.Errorf("failed to build sphere: %w", err)
	}

	program, err := gfx.LinkProgram(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to link program: %w", err)
	}

	textures := make([]graphics.Texture, 0, len(cfg.Textures))
	for _, p := range cfg.Textures {
		tex, err := gfx.MakePatternTexture(p)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s texture: %w", p.Kind, err)
		}
		textures = append(textures, tex)
	}

	pop, err := Populate(cfg, textures, r)
	if err != nil {
		return nil, err
	}

	log.Printf("scene ready: %d objects, %d textures, base hue %.1f", len(pop.Objects), len(textures), pop.BaseHue)

	return &Driver{
		gfx:      gfx,
		cfg:      cfg,
		mesh:     mesh,
		program:  program,
		textures: textures,
		pop:      pop,
		shared: SharedUniforms{
			LightWorldPos: cfg.LightWorldPos,
			LightColor:    cfg.LightColor,
		},
	}, nil
}

// Frame updates and draws one frame for timestamp ts, measured from the
// start of the run.
func (d *Driver) Frame(ts time.Duration) {
	clock := float32(d.cfg.Clock(ts))

	w, h := d.gfx.ResizeToDisplay()
	d.gfx.BeginFrame(w, h)

	projection := d.cfg.Projection(w, h)
	camera := d.cfg.CameraMatrix()
	view := camera.Inv()
	viewProjection := projection.Mul4(view)

	d.program.Use()
	d.program.SetAttributes(d.mesh)
	d.gfx.BindIndices(d.mesh)

	d.shared.ViewInverse = camera
	d.program.SetUniforms(&d.shared)

	for i := range d.pop.Objects {
		obj := &d.pop.Objects[i]
		d.scratch.Update(obj.WorldMatrix(clock), viewProjection)
		d.program.SetUniforms(&d.scratch)
		d.program.SetUniforms(&obj.Material)
		d.gfx.DrawElements(d.mesh)
	}
	d.frames++
}

func (d *Driver) Objects() []Object { return d.pop.Objects }

func (d *Driver) Textures() []graphics.Texture { return d.textures }

func (d *Driver) Frames() uint64 { return d.frames }

// ViewProjection returns the camera-to-clip transform for a surface size.
func (d *Driver) ViewProjection(width, height int) mgl32.Mat4 {
	return d.cfg.Projection(width, height).Mul4(d.cfg.CameraMatrix().Inv())
}
