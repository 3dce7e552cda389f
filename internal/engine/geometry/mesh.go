// Package geometry builds procedural meshes: swept tubes, cones, spheres,
// tori, and star prisms. All builders are pure; a mesh is never mutated after
// construction, callers rebuild when parameters change.
package geometry

import (
	"errors"

	"github.com/frostpine/evergreen/pkg/math"
)

// ErrInvalidGeometry is returned when builder parameters cannot produce a
// valid mesh. It indicates a configuration bug and is fatal at build time.
var ErrInvalidGeometry = errors.New("invalid geometry parameters")

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds vertex and index data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func vertex(pos, normal math.Vec3) Vertex {
	return Vertex{
		Position: [3]float32{pos.X, pos.Y, pos.Z},
		Normal:   [3]float32{normal.X, normal.Y, normal.Z},
	}
}
