package geometry

import (
	"fmt"
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// SweepTube extrudes a circular cross-section of the given radius along the
// curve, producing a closed tube surface. The mesh has exactly
// (curveSamples+1) * radialSegments vertices; ring seams share vertices via
// index wrap-around.
func SweepTube(c Curve, radius float32, curveSamples, radialSegments int) (*Mesh, error) {
	if curveSamples < 2 {
		return nil, fmt.Errorf("tube sweep needs curveSamples >= 2, got %d: %w",
			curveSamples, ErrInvalidGeometry)
	}
	if radialSegments < 3 {
		return nil, fmt.Errorf("tube sweep needs radialSegments >= 3, got %d: %w",
			radialSegments, ErrInvalidGeometry)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("tube radius must be positive, got %f: %w",
			radius, ErrInvalidGeometry)
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, (curveSamples+1)*radialSegments),
		Indices:  make([]uint32, 0, curveSamples*radialSegments*6),
	}

	for i := 0; i <= curveSamples; i++ {
		t := float32(i) / float32(curveSamples)
		center := c.Point(t)
		tangent := curveTangent(c, t)
		normal, binormal := tubeFrame(tangent)

		for j := 0; j < radialSegments; j++ {
			theta := float64(j) / float64(radialSegments) * 2 * gomath.Pi
			dir := normal.Scale(float32(gomath.Cos(theta))).Add(binormal.Scale(float32(gomath.Sin(theta))))
			mesh.Vertices = append(mesh.Vertices, vertex(center.Add(dir.Scale(radius)), dir))
		}
	}

	rs := uint32(radialSegments)
	for i := 0; i < curveSamples; i++ {
		ring := uint32(i) * rs
		next := ring + rs
		for j := uint32(0); j < rs; j++ {
			jn := (j + 1) % rs
			a := ring + j
			b := next + j
			cIdx := next + jn
			d := ring + jn
			mesh.Indices = append(mesh.Indices, a, b, cIdx, a, cIdx, d)
		}
	}

	return mesh, nil
}

// curveTangent approximates the curve tangent at t with a central difference.
func curveTangent(c Curve, t float32) math.Vec3 {
	const h = 1e-3
	t0 := t - h
	t1 := t + h
	if t0 < 0 {
		t0 = 0
	}
	if t1 > 1 {
		t1 = 1
	}
	d := c.Point(t1).Sub(c.Point(t0))
	if d.Length() == 0 {
		return math.Vec3{Y: 1}
	}
	return d.Normalize()
}

// tubeFrame returns two unit vectors perpendicular to the tangent and to
// each other. The reference up axis switches when the tangent is nearly
// vertical so the frame never degenerates.
func tubeFrame(tangent math.Vec3) (normal, binormal math.Vec3) {
	up := math.Vec3{Y: 1}
	if abs32(tangent.Dot(up)) > 0.99 {
		up = math.Vec3{X: 1}
	}
	normal = tangent.Cross(up).Normalize()
	binormal = tangent.Cross(normal).Normalize()
	return normal, binormal
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
