package geometry

import (
	"fmt"
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// Curve is an ordered set of 3D control points sampled with Catmull-Rom
// interpolation: the curve passes through every control point with C1
// continuity, tangents taken from neighboring points. Sampling is a pure
// function of the control points and t.
type Curve struct {
	points []math.Vec3
}

// NewCurve creates a curve from control points. At least two points are
// required.
func NewCurve(points []math.Vec3) (Curve, error) {
	if len(points) < 2 {
		return Curve{}, fmt.Errorf("curve needs at least 2 control points, got %d: %w",
			len(points), ErrInvalidGeometry)
	}
	pts := make([]math.Vec3, len(points))
	copy(pts, points)
	return Curve{points: pts}, nil
}

// PointCount returns the number of control points.
func (c Curve) PointCount() int {
	return len(c.points)
}

// ControlPoint returns the i-th control point.
func (c Curve) ControlPoint(i int) math.Vec3 {
	return c.points[i]
}

// Point samples the curve at t in [0,1]. Values outside the range are
// clamped. t=0 yields the first control point, t=1 the last.
func (c Curve) Point(t float32) math.Vec3 {
	if t <= 0 {
		return c.points[0]
	}
	if t >= 1 {
		return c.points[len(c.points)-1]
	}

	segments := len(c.points) - 1
	scaled := t * float32(segments)
	i := int(scaled)
	if i >= segments {
		i = segments - 1
	}
	u := scaled - float32(i)

	p1 := c.points[i]
	p2 := c.points[i+1]
	// End tangents reuse the boundary point.
	p0 := p1
	if i > 0 {
		p0 = c.points[i-1]
	}
	p3 := p2
	if i+2 < len(c.points) {
		p3 = c.points[i+2]
	}

	return catmullRom(p0, p1, p2, p3, u)
}

// catmullRom evaluates the uniform Catmull-Rom basis for one segment.
func catmullRom(p0, p1, p2, p3 math.Vec3, u float32) math.Vec3 {
	u2 := u * u
	u3 := u2 * u

	a := p1.Scale(2)
	b := p2.Sub(p0).Scale(u)
	c := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(u2)
	d := p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(u3)

	return a.Add(b).Add(c).Add(d).Scale(0.5)
}

// BuildWrapCurve generates the spiral ribbon path for one layer: a helix
// winding from the layer's bottom radius to its top radius, vertically
// centered on the layer. The returned curve has sampleCount+1 control points;
// point i sits at angle (i/sampleCount)*2*pi*turns.
func BuildWrapCurve(radiusBottom, radiusTop, height, turns float32, sampleCount int, radialOffset float32) (Curve, error) {
	if sampleCount < 2 {
		return Curve{}, fmt.Errorf("wrap curve needs sampleCount >= 2, got %d: %w",
			sampleCount, ErrInvalidGeometry)
	}
	if radiusBottom < 0 || radiusTop < 0 {
		return Curve{}, fmt.Errorf("wrap curve radii must be non-negative, got bottom=%f top=%f: %w",
			radiusBottom, radiusTop, ErrInvalidGeometry)
	}

	points := make([]math.Vec3, sampleCount+1)
	rb := radiusBottom + radialOffset
	rt := radiusTop + radialOffset
	for i := 0; i <= sampleCount; i++ {
		t := float32(i) / float32(sampleCount)
		radius := rb + (rt-rb)*t
		angle := float64(t * 2 * gomath.Pi * turns)
		points[i] = math.Vec3{
			X: float32(gomath.Cos(angle)) * radius,
			Y: (t - 0.5) * height,
			Z: float32(gomath.Sin(angle)) * radius,
		}
	}
	return Curve{points: points}, nil
}
