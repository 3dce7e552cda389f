package geometry

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/frostpine/evergreen/pkg/math"
)

func TestNewCurveRejectsTooFewPoints(t *testing.T) {
	for _, pts := range [][]math.Vec3{nil, {{X: 1}}} {
		if _, err := NewCurve(pts); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("NewCurve(%d points): expected ErrInvalidGeometry, got %v", len(pts), err)
		}
	}
}

func TestCurvePassesThroughEndpoints(t *testing.T) {
	pts := []math.Vec3{{X: 1}, {Y: 2}, {Z: 3}}
	c, err := NewCurve(pts)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	if got := c.Point(0); got != pts[0] {
		t.Errorf("Point(0) = %v, want %v", got, pts[0])
	}
	if got := c.Point(1); got != pts[2] {
		t.Errorf("Point(1) = %v, want %v", got, pts[2])
	}
	// Interior control points are interpolated exactly at their parameter.
	mid := c.Point(0.5)
	if mid.Distance(pts[1]) > 1e-5 {
		t.Errorf("Point(0.5) = %v, want %v", mid, pts[1])
	}
}

func TestCurveSamplingIsDeterministic(t *testing.T) {
	c, err := BuildWrapCurve(2, 0.5, 1.5, 3, 64, 0.05)
	if err != nil {
		t.Fatalf("BuildWrapCurve: %v", err)
	}
	for _, tt := range []float32{0, 0.17, 0.5, 0.83, 1} {
		a := c.Point(tt)
		b := c.Point(tt)
		if a != b {
			t.Errorf("Point(%f) not bit-identical across calls: %v vs %v", tt, a, b)
		}
	}
}

func TestBuildWrapCurvePointCountAndAngles(t *testing.T) {
	const (
		rb, rt, height float32 = 2.0, 0.5, 1.5
		turns          float32 = 3
		samples                = 48
	)
	c, err := BuildWrapCurve(rb, rt, height, turns, samples, 0)
	if err != nil {
		t.Fatalf("BuildWrapCurve: %v", err)
	}
	if c.PointCount() != samples+1 {
		t.Fatalf("point count = %d, want %d", c.PointCount(), samples+1)
	}

	// First point at angle 0: on the +X axis at the bottom radius.
	first := c.ControlPoint(0)
	if gomath.Abs(float64(first.X-rb)) > 1e-5 || gomath.Abs(float64(first.Z)) > 1e-5 {
		t.Errorf("first point = %v, want (%f, _, 0)", first, rb)
	}
	if gomath.Abs(float64(first.Y+height/2)) > 1e-5 {
		t.Errorf("first point y = %f, want %f", first.Y, -height/2)
	}

	// Last point at angle 2*pi*turns: with integer turns, back on +X at the
	// top radius and the top of the layer.
	last := c.ControlPoint(samples)
	if gomath.Abs(float64(last.X-rt)) > 1e-4 || gomath.Abs(float64(last.Z)) > 1e-4 {
		t.Errorf("last point = %v, want (%f, _, 0)", last, rt)
	}
	if gomath.Abs(float64(last.Y-height/2)) > 1e-5 {
		t.Errorf("last point y = %f, want %f", last.Y, height/2)
	}
}

func TestBuildWrapCurveRadiusMonotonic(t *testing.T) {
	const samples = 32
	c, err := BuildWrapCurve(2.0, 0.5, 1.0, 2, samples, 0)
	if err != nil {
		t.Fatalf("BuildWrapCurve: %v", err)
	}
	prev := float64(-1)
	for i := 0; i <= samples; i++ {
		p := c.ControlPoint(i)
		r := gomath.Hypot(float64(p.X), float64(p.Z))
		if prev >= 0 && r > prev+1e-5 {
			t.Fatalf("radius increased at sample %d: %f -> %f", i, prev, r)
		}
		prev = r
	}
}

func TestBuildWrapCurveRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		rb, rt  float32
		samples int
	}{
		{"too few samples", 1, 1, 1},
		{"negative bottom radius", -1, 1, 16},
		{"negative top radius", 1, -1, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildWrapCurve(tc.rb, tc.rt, 1, 2, tc.samples, 0); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}
