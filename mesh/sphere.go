package mesh

import (
	"fmt"
	"math"
)

// maxVertices is the largest vertex count addressable by 16-bit indices.
const maxVertices = 1 << 16

// Sphere is CPU-side UV sphere geometry ready for upload.
type Sphere struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	Texcoords []float32 // uv per vertex
	Indices   []uint16  // triangle list
}

// NewSphere tessellates a sphere of the given radius. axis is the number of
// longitude segments, height the number of latitude segments.
func NewSphere(radius float32, axis, height int) (*Sphere, error) {
	if axis <= 0 || height <= 0 {
		return nil, fmt.Errorf("sphere subdivisions must be > 0, got axis=%d height=%d", axis, height)
	}
	around := axis + 1
	numVertices := around * (height + 1)
	if numVertices > maxVertices {
		return nil, fmt.Errorf("sphere needs %d vertices, more than 16-bit indices can address", numVertices)
	}

	s := &Sphere{
		Positions: make([]float32, 0, numVertices*3),
		Normals:   make([]float32, 0, numVertices*3),
		Texcoords: make([]float32, 0, numVertices*2),
		Indices:   make([]uint16, 0, axis*height*6),
	}

	for y := 0; y <= height; y++ {
		for x := 0; x <= axis; x++ {
			u := float64(x) / float64(axis)
			v := float64(y) / float64(height)
			theta := 2 * math.Pi * u
			phi := math.Pi * v
			sinTheta, cosTheta := math.Sincos(theta)
			sinPhi, cosPhi := math.Sincos(phi)

			ux := float32(cosTheta * sinPhi)
			uy := float32(cosPhi)
			uz := float32(sinTheta * sinPhi)

			s.Positions = append(s.Positions, radius*ux, radius*uy, radius*uz)
			s.Normals = append(s.Normals, ux, uy, uz)
			s.Texcoords = append(s.Texcoords, float32(1-u), float32(v))
		}
	}

	for x := 0; x < axis; x++ {
		for y := 0; y < height; y++ {
			s.Indices = append(s.Indices,
				uint16(y*around+x),
				uint16(y*around+x+1),
				uint16((y+1)*around+x),
			)
			s.Indices = append(s.Indices,
				uint16((y+1)*around+x),
				uint16(y*around+x+1),
				uint16((y+1)*around+x+1),
			)
		}
	}
	return s, nil
}

// VertexCount returns the number of vertices.
func (s *Sphere) VertexCount() int { return len(s.Positions) / 3 }

// ElementCount returns the number of indices to draw.
func (s *Sphere) ElementCount() int { return len(s.Indices) }
