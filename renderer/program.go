package renderer

import (
	"fmt"
	"log"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/orbits/graphics"
	"github.com/richinsley/orbits/shader"
	"github.com/richinsley/orbits/translator"
)

type uniformSetter func(value any)

// program is a linked shader program. Setters are keyed by the names used in
// the WebGL2 sources, not the names the translator emitted.
type program struct {
	id       uint32
	uniforms map[string]uniformSetter
	attribs  map[string]uint32
}

func (p *program) Use() {
	gl.UseProgram(p.id)
}

// SetAttributes points every active attribute at its buffer in m. Attributes
// the mesh does not carry are left disabled.
func (p *program) SetAttributes(m graphics.Mesh) {
	for name, loc := range p.attribs {
		a, ok := m.Attribs[name]
		if !ok {
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, a.Buffer)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(a.NumComponents), gl.FLOAT, false, 0, gl.PtrOffset(0))
	}
}

// SetUniforms pushes every value in u that has an active uniform. Values for
// uniforms the compiler optimized out are dropped.
func (p *program) SetUniforms(u graphics.UniformSet) {
	u.Each(func(name string, value any) {
		if set, ok := p.uniforms[name]; ok {
			set(value)
		}
	})
}

// LinkProgram looks up the two named sources, translates them to desktop
// GLSL, links them and derives setters from the program's active uniforms
// and attributes.
func (r *Renderer) LinkProgram(vertexName, fragmentName string) (graphics.Program, error) {
	vs, err := shader.Lookup(vertexName)
	if err != nil {
		return nil, err
	}
	fs, err := shader.Lookup(fragmentName)
	if err != nil {
		return nil, err
	}

	vsCode, vsNames, err := translator.Translate(vs.Code, string(vs.Stage))
	if err != nil {
		return nil, err
	}
	fsCode, fsNames, err := translator.Translate(fs.Code, string(fs.Stage))
	if err != nil {
		return nil, err
	}

	id, err := newProgram(vsCode, fsCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	names := sourceNames(vsNames, fsNames)

	p := &program{
		id:       id,
		uniforms: make(map[string]uniformSetter),
		attribs:  make(map[string]uint32),
	}
	gl.UseProgram(id)

	var count int32
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORMS, &count)
	var unit int32
	for i := uint32(0); i < uint32(count); i++ {
		mapped, xtype := activeUniform(id, i)
		loc := gl.GetUniformLocation(id, gl.Str(mapped+"\x00"))
		if loc == -1 {
			continue
		}
		name := lookupName(names, mapped)
		set := newUniformSetter(xtype, loc, &unit)
		if set == nil {
			log.Printf("uniform %s has unsupported type 0x%x", name, xtype)
			continue
		}
		p.uniforms[name] = set
	}

	gl.GetProgramiv(id, gl.ACTIVE_ATTRIBUTES, &count)
	for i := uint32(0); i < uint32(count); i++ {
		mapped := activeAttrib(id, i)
		loc := gl.GetAttribLocation(id, gl.Str(mapped+"\x00"))
		if loc < 0 {
			continue
		}
		p.attribs[lookupName(names, mapped)] = uint32(loc)
	}

	r.programs = append(r.programs, p)
	return p, nil
}

func activeUniform(id, index uint32) (string, uint32) {
	var length, size int32
	var xtype uint32
	buf := make([]uint8, 256)
	gl.GetActiveUniform(id, index, int32(len(buf)), &length, &size, &xtype, &buf[0])
	return trimArraySuffix(string(buf[:length])), xtype
}

func activeAttrib(id, index uint32) string {
	var length, size int32
	var xtype uint32
	buf := make([]uint8, 256)
	gl.GetActiveAttrib(id, index, int32(len(buf)), &length, &size, &xtype, &buf[0])
	return string(buf[:length])
}

// newUniformSetter returns a setter for a uniform of the given GL type, or
// nil when the type is not one the scene uses. Each sampler takes the next
// free texture unit.
func newUniformSetter(xtype uint32, loc int32, unit *int32) uniformSetter {
	switch xtype {
	case gl.FLOAT:
		return func(value any) {
			if v, ok := value.(float32); ok {
				gl.Uniform1f(loc, v)
			}
		}
	case gl.FLOAT_VEC3:
		return func(value any) {
			if v, ok := value.(mgl32.Vec3); ok {
				gl.Uniform3fv(loc, 1, &v[0])
			}
		}
	case gl.FLOAT_VEC4:
		return func(value any) {
			if v, ok := value.(mgl32.Vec4); ok {
				gl.Uniform4fv(loc, 1, &v[0])
			}
		}
	case gl.FLOAT_MAT4:
		return func(value any) {
			if m, ok := value.(mgl32.Mat4); ok {
				gl.UniformMatrix4fv(loc, 1, false, &m[0])
			}
		}
	case gl.SAMPLER_2D:
		u := *unit
		*unit++
		return func(value any) {
			if t, ok := value.(graphics.Texture); ok {
				gl.ActiveTexture(gl.TEXTURE0 + uint32(u))
				gl.BindTexture(gl.TEXTURE_2D, uint32(t))
				gl.Uniform1i(loc, u)
			}
		}
	}
	return nil
}

// sourceNames inverts the translator's source→translated name maps.
func sourceNames(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for orig, mapped := range m {
			out[mapped] = orig
		}
	}
	return out
}

func lookupName(names map[string]string, mapped string) string {
	if orig, ok := names[mapped]; ok {
		return orig
	}
	return mapped
}

// trimArraySuffix turns "u_lights[0]" into "u_lights".
func trimArraySuffix(name string) string {
	return strings.TrimSuffix(name, "[0]")
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
