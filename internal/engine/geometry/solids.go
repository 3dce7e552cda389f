package geometry

import (
	"fmt"
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// BuildCone builds an upright cone frustum centered vertically on the
// origin: bottom ring at y=-height/2 with radiusBottom, top ring at
// y=+height/2 with radiusTop. radiusTop may be zero for a pointed cone.
// The bottom is capped; the top is left open.
func BuildCone(radiusBottom, radiusTop, height float32, radialSegments int) (*Mesh, error) {
	if radiusBottom < 0 || radiusTop < 0 {
		return nil, fmt.Errorf("cone radii must be non-negative, got bottom=%f top=%f: %w",
			radiusBottom, radiusTop, ErrInvalidGeometry)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cone height must be positive, got %f: %w", height, ErrInvalidGeometry)
	}
	if radialSegments < 3 {
		return nil, fmt.Errorf("cone needs radialSegments >= 3, got %d: %w",
			radialSegments, ErrInvalidGeometry)
	}

	mesh := &Mesh{}
	halfH := height / 2
	slope := (radiusBottom - radiusTop) / height

	// Side rings. The slanted normal is constant per angular position.
	for _, ring := range []struct {
		y, r float32
	}{{-halfH, radiusBottom}, {halfH, radiusTop}} {
		for j := 0; j < radialSegments; j++ {
			theta := float64(j) / float64(radialSegments) * 2 * gomath.Pi
			cosT := float32(gomath.Cos(theta))
			sinT := float32(gomath.Sin(theta))
			pos := math.Vec3{X: cosT * ring.r, Y: ring.y, Z: sinT * ring.r}
			normal := math.Vec3{X: cosT, Y: slope, Z: sinT}.Normalize()
			mesh.Vertices = append(mesh.Vertices, vertex(pos, normal))
		}
	}

	rs := uint32(radialSegments)
	for j := uint32(0); j < rs; j++ {
		jn := (j + 1) % rs
		a := j
		b := rs + j
		c := rs + jn
		d := jn
		mesh.Indices = append(mesh.Indices, a, c, b, a, d, c)
	}

	// Bottom cap: center vertex plus a dedicated ring with a down normal.
	down := math.Vec3{Y: -1}
	capCenter := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, vertex(math.Vec3{Y: -halfH}, down))
	capStart := uint32(len(mesh.Vertices))
	for j := 0; j < radialSegments; j++ {
		theta := float64(j) / float64(radialSegments) * 2 * gomath.Pi
		pos := math.Vec3{
			X: float32(gomath.Cos(theta)) * radiusBottom,
			Y: -halfH,
			Z: float32(gomath.Sin(theta)) * radiusBottom,
		}
		mesh.Vertices = append(mesh.Vertices, vertex(pos, down))
	}
	for j := uint32(0); j < rs; j++ {
		jn := (j + 1) % rs
		mesh.Indices = append(mesh.Indices, capCenter, capStart+j, capStart+jn)
	}

	return mesh, nil
}

// BuildCylinder builds a capped cylinder. It is a cone frustum with equal
// radii.
func BuildCylinder(radius, height float32, radialSegments int) (*Mesh, error) {
	return BuildCone(radius, radius, height, radialSegments)
}

// BuildSphere builds a latitude/longitude sphere centered on the origin.
func BuildSphere(radius float32, widthSegments, heightSegments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f: %w", radius, ErrInvalidGeometry)
	}
	if widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("sphere needs widthSegments >= 3 and heightSegments >= 2, got %d/%d: %w",
			widthSegments, heightSegments, ErrInvalidGeometry)
	}

	mesh := &Mesh{}
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		phi := v * gomath.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			theta := u * 2 * gomath.Pi
			n := math.Vec3{
				X: float32(gomath.Sin(phi) * gomath.Cos(theta)),
				Y: float32(gomath.Cos(phi)),
				Z: float32(gomath.Sin(phi) * gomath.Sin(theta)),
			}
			mesh.Vertices = append(mesh.Vertices, vertex(n.Scale(radius), n))
		}
	}

	stride := uint32(widthSegments + 1)
	for iy := uint32(0); iy < uint32(heightSegments); iy++ {
		for ix := uint32(0); ix < uint32(widthSegments); ix++ {
			a := iy*stride + ix
			b := (iy+1)*stride + ix
			c := (iy+1)*stride + ix + 1
			d := iy*stride + ix + 1
			if iy != 0 {
				mesh.Indices = append(mesh.Indices, a, b, d)
			}
			if iy != uint32(heightSegments)-1 {
				mesh.Indices = append(mesh.Indices, b, c, d)
			}
		}
	}

	return mesh, nil
}

// BuildTorus builds a torus in the XZ plane: ring of the given radius, tube
// cross-section of tubeRadius.
func BuildTorus(radius, tubeRadius float32, radialSegments, tubularSegments int) (*Mesh, error) {
	if radius <= 0 || tubeRadius <= 0 {
		return nil, fmt.Errorf("torus radii must be positive, got ring=%f tube=%f: %w",
			radius, tubeRadius, ErrInvalidGeometry)
	}
	if radialSegments < 3 || tubularSegments < 3 {
		return nil, fmt.Errorf("torus needs radialSegments and tubularSegments >= 3, got %d/%d: %w",
			radialSegments, tubularSegments, ErrInvalidGeometry)
	}

	mesh := &Mesh{}
	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * 2 * gomath.Pi
		ringCenter := math.Vec3{
			X: float32(gomath.Cos(u)) * radius,
			Z: float32(gomath.Sin(u)) * radius,
		}
		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments) * 2 * gomath.Pi
			n := math.Vec3{
				X: float32(gomath.Cos(u) * gomath.Cos(v)),
				Y: float32(gomath.Sin(v)),
				Z: float32(gomath.Sin(u) * gomath.Cos(v)),
			}
			mesh.Vertices = append(mesh.Vertices, vertex(ringCenter.Add(n.Scale(tubeRadius)), n))
		}
	}

	stride := uint32(radialSegments + 1)
	for i := uint32(0); i < uint32(tubularSegments); i++ {
		for j := uint32(0); j < uint32(radialSegments); j++ {
			a := i*stride + j
			b := (i+1)*stride + j
			c := (i+1)*stride + j + 1
			d := i*stride + j + 1
			mesh.Indices = append(mesh.Indices, a, b, d, b, c, d)
		}
	}

	return mesh, nil
}
