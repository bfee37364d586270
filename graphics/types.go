package graphics

// Texture is an opaque GPU texture name.
type Texture uint32

// Attrib describes one vertex attribute buffer.
type Attrib struct {
	Buffer        uint32
	NumComponents int
}

// Mesh holds uploaded geometry: attribute buffers keyed by shader attribute
// name, an unsigned short index buffer and the number of indices to draw.
type Mesh struct {
	Attribs      map[string]Attrib
	Indices      uint32
	ElementCount int
}

// UniformSet is a group of named uniform values pushed together.
type UniformSet interface {
	Each(fn func(name string, value any))
}

// Program is a linked shader program with setters derived from its active
// uniforms and attributes.
type Program interface {
	Use()
	SetAttributes(mesh Mesh)
	SetUniforms(u UniformSet)
}
