package geometry

import (
	"errors"
	gomath "math"
	"testing"
)

func TestBuildConeCounts(t *testing.T) {
	const segments = 24
	mesh, err := BuildCone(2, 0.5, 1.5, segments)
	if err != nil {
		t.Fatalf("BuildCone: %v", err)
	}
	// Two side rings plus cap center and cap ring.
	wantVerts := segments*2 + 1 + segments
	if len(mesh.Vertices) != wantVerts {
		t.Errorf("vertex count = %d, want %d", len(mesh.Vertices), wantVerts)
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildConeVerticalExtent(t *testing.T) {
	mesh, err := BuildCone(1, 0, 2, 12)
	if err != nil {
		t.Fatalf("BuildCone: %v", err)
	}
	minY, maxY := float32(1e9), float32(-1e9)
	for _, v := range mesh.Vertices {
		if v.Position[1] < minY {
			minY = v.Position[1]
		}
		if v.Position[1] > maxY {
			maxY = v.Position[1]
		}
	}
	if minY != -1 || maxY != 1 {
		t.Errorf("vertical extent = [%f, %f], want [-1, 1]", minY, maxY)
	}
}

func TestBuildConeRejectsInvalidInput(t *testing.T) {
	if _, err := BuildCone(-1, 0, 1, 12); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative radius: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := BuildCone(1, 0, 0, 12); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero height: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := BuildCone(1, 0, 1, 2); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("2 segments: expected ErrInvalidGeometry, got %v", err)
	}
}

func TestBuildSphereVerticesOnSurface(t *testing.T) {
	const radius = 0.75
	mesh, err := BuildSphere(radius, 12, 8)
	if err != nil {
		t.Fatalf("BuildSphere: %v", err)
	}
	for i, v := range mesh.Vertices {
		d := gomath.Sqrt(float64(v.Position[0]*v.Position[0] +
			v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		if gomath.Abs(d-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %f, want %f", i, d, radius)
		}
	}
}

func TestBuildTorusRingDistance(t *testing.T) {
	const (
		ring float32 = 1.3
		tube float32 = 0.08
	)
	mesh, err := BuildTorus(ring, tube, 8, 24)
	if err != nil {
		t.Fatalf("BuildTorus: %v", err)
	}
	for i, v := range mesh.Vertices {
		// Distance from the ring circle must equal the tube radius.
		horiz := gomath.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		d := gomath.Hypot(horiz-float64(ring), float64(v.Position[1]))
		if gomath.Abs(d-float64(tube)) > 1e-5 {
			t.Fatalf("vertex %d at tube distance %f, want %f", i, d, tube)
		}
	}
}

func TestBuildStar(t *testing.T) {
	const points = 5
	mesh, err := BuildStar(points, 0.45, 0.18, 0.12)
	if err != nil {
		t.Fatalf("BuildStar: %v", err)
	}
	// Front fan + back fan + four vertices per rim quad.
	wantVerts := (1+2*points)*2 + 2*points*4
	if len(mesh.Vertices) != wantVerts {
		t.Errorf("vertex count = %d, want %d", len(mesh.Vertices), wantVerts)
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}

	// Depth extent is symmetric about the XY plane.
	for i, v := range mesh.Vertices {
		if gomath.Abs(float64(v.Position[2])) > 0.06+1e-6 {
			t.Fatalf("vertex %d z = %f exceeds half depth", i, v.Position[2])
		}
	}
}

func TestBuildStarRejectsInvalidInput(t *testing.T) {
	if _, err := BuildStar(2, 1, 0.5, 0.1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("2 points: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := BuildStar(5, 0.5, 0.5, 0.1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("inner == outer: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := BuildStar(5, 1, 0.5, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero depth: expected ErrInvalidGeometry, got %v", err)
	}
}
