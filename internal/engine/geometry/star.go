package geometry

import (
	"fmt"
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// BuildStar builds an extruded star prism in the XY plane: points spikes
// alternating between outerRadius and innerRadius, extruded by depth along Z.
// Front and back faces are flat fans; the rim gets per-quad flat normals.
func BuildStar(points int, outerRadius, innerRadius, depth float32) (*Mesh, error) {
	if points < 3 {
		return nil, fmt.Errorf("star needs at least 3 points, got %d: %w", points, ErrInvalidGeometry)
	}
	if outerRadius <= 0 || innerRadius <= 0 || innerRadius >= outerRadius {
		return nil, fmt.Errorf("star needs 0 < innerRadius < outerRadius, got inner=%f outer=%f: %w",
			innerRadius, outerRadius, ErrInvalidGeometry)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("star depth must be positive, got %f: %w", depth, ErrInvalidGeometry)
	}

	outline := starOutline(points, outerRadius, innerRadius)
	n := len(outline) // 2*points
	halfD := depth / 2

	mesh := &Mesh{}

	// Front face fan.
	front := math.Vec3{Z: 1}
	frontCenter := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, vertex(math.Vec3{Z: halfD}, front))
	frontStart := uint32(len(mesh.Vertices))
	for _, p := range outline {
		mesh.Vertices = append(mesh.Vertices, vertex(math.Vec3{X: p.X, Y: p.Y, Z: halfD}, front))
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mesh.Indices = append(mesh.Indices, frontCenter, frontStart+uint32(i), frontStart+uint32(j))
	}

	// Back face fan, wound the other way.
	back := math.Vec3{Z: -1}
	backCenter := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, vertex(math.Vec3{Z: -halfD}, back))
	backStart := uint32(len(mesh.Vertices))
	for _, p := range outline {
		mesh.Vertices = append(mesh.Vertices, vertex(math.Vec3{X: p.X, Y: p.Y, Z: -halfD}, back))
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mesh.Indices = append(mesh.Indices, backCenter, backStart+uint32(j), backStart+uint32(i))
	}

	// Rim quads, one flat normal each.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := outline[i]
		b := outline[j]
		edge := math.Vec3{X: b.X - a.X, Y: b.Y - a.Y}
		normal := edge.Cross(math.Vec3{Z: 1}).Normalize()

		base := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices,
			vertex(math.Vec3{X: a.X, Y: a.Y, Z: halfD}, normal),
			vertex(math.Vec3{X: a.X, Y: a.Y, Z: -halfD}, normal),
			vertex(math.Vec3{X: b.X, Y: b.Y, Z: -halfD}, normal),
			vertex(math.Vec3{X: b.X, Y: b.Y, Z: halfD}, normal),
		)
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return mesh, nil
}

// starOutline returns the 2*points outline vertices, starting with a spike
// tip straight up and alternating outer/inner.
func starOutline(points int, outerRadius, innerRadius float32) []math.Vec3 {
	outline := make([]math.Vec3, 0, points*2)
	step := gomath.Pi / float64(points)
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := gomath.Pi/2 + float64(i)*step
		outline = append(outline, math.Vec3{
			X: float32(gomath.Cos(angle)) * r,
			Y: float32(gomath.Sin(angle)) * r,
		})
	}
	return outline
}
