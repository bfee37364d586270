package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/orbits/graphics"
	"github.com/richinsley/orbits/mesh"
	"github.com/richinsley/orbits/texture"
)

// glInitOnce ensures gl.Init() is called only once per process.
var glInitOnce sync.Once

// Renderer is the OpenGL backend for the scene driver. All methods must be
// called on the thread that owns the context.
type Renderer struct {
	context  graphics.Context
	vao      uint32
	buffers  []uint32
	textures []uint32
	programs []*program
}

func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	if ctx == nil {
		return nil, graphics.ErrContextUnavailable
	}
	r := &Renderer{context: ctx}

	// Make the context current on this thread.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v: %w", initErr, graphics.ErrContextUnavailable)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// Core profile requires a bound vertex array for any attribute state.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	return r, nil
}

// BuildSphere generates a sphere and uploads its positions, normals,
// texture coordinates and indices.
func (r *Renderer) BuildSphere(radius float32, axis, height int) (graphics.Mesh, error) {
	s, err := mesh.NewSphere(radius, axis, height)
	if err != nil {
		return graphics.Mesh{}, err
	}
	m := graphics.Mesh{
		Attribs: map[string]graphics.Attrib{
			"a_position": {Buffer: r.arrayBuffer(s.Positions), NumComponents: 3},
			"a_normal":   {Buffer: r.arrayBuffer(s.Normals), NumComponents: 3},
			"a_texcoord": {Buffer: r.arrayBuffer(s.Texcoords), NumComponents: 2},
		},
		ElementCount: s.ElementCount(),
	}

	gl.GenBuffers(1, &m.Indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.Indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*2, gl.Ptr(s.Indices), gl.STATIC_DRAW)
	r.buffers = append(r.buffers, m.Indices)

	return m, nil
}

func (r *Renderer) arrayBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.buffers = append(r.buffers, vbo)
	return vbo
}

// MakePatternTexture renders p and uploads it as a mipmapped, repeating
// RGBA8 texture.
func (r *Renderer) MakePatternTexture(p texture.Pattern) (graphics.Texture, error) {
	img, err := p.Image()
	if err != nil {
		return 0, err
	}
	bounds := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(bounds.Dx()), int32(bounds.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, tex)
	return graphics.Texture(tex), nil
}

// ResizeToDisplay reports the drawable size of the window in pixels.
func (r *Renderer) ResizeToDisplay() (int, int) {
	return r.context.GetFramebufferSize()
}

func (r *Renderer) BeginFrame(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) BindIndices(m graphics.Mesh) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.Indices)
}

func (r *Renderer) DrawElements(m graphics.Mesh) {
	gl.DrawElements(gl.TRIANGLES, int32(m.ElementCount), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

func (r *Renderer) Shutdown() {
	// The context itself will be shut down by its owner.
	for _, p := range r.programs {
		gl.DeleteProgram(p.id)
	}
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
	}
	if len(r.buffers) > 0 {
		gl.DeleteBuffers(int32(len(r.buffers)), &r.buffers[0])
	}
	gl.DeleteVertexArrays(1, &r.vao)
	r.programs, r.textures, r.buffers = nil, nil, nil
}
