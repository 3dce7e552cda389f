package layout

import (
	gomath "math"
	"testing"
)

func TestPlacementsCount(t *testing.T) {
	r := Ring{Count: 8, Radius: 1.3, BaseScale: 1, Jitter: 0.3, Seed: 42}
	got := r.Placements()
	if len(got) != 8 {
		t.Fatalf("placement count = %d, want 8", len(got))
	}
}

func TestPlacementsOnRadius(t *testing.T) {
	r := Ring{
		Count:         8,
		Radius:        1.3,
		BaseY:         0.2,
		WaveAmplitude: 0.15,
		WaveFrequency: 3,
		BaseScale:     1,
		Jitter:        0.3,
		Seed:          42,
	}
	for i, p := range r.Placements() {
		horiz := gomath.Hypot(float64(p.Position.X), float64(p.Position.Z))
		if gomath.Abs(horiz-1.3) > 1e-5 {
			t.Errorf("placement %d horizontal distance = %f, want 1.3", i, horiz)
		}
		if dy := gomath.Abs(float64(p.Position.Y - 0.2)); dy > 0.15+1e-5 {
			t.Errorf("placement %d vertical offset %f exceeds wave amplitude", i, dy)
		}
	}
}

func TestPlacementsDeterministic(t *testing.T) {
	r := Ring{Count: 12, Radius: 2, BaseScale: 0.8, Jitter: 0.4, Seed: 7}
	a := r.Placements()
	b := r.Placements()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPlacementsSeedChangesLayout(t *testing.T) {
	a := Ring{Count: 12, Radius: 2, BaseScale: 0.8, Jitter: 0.4, Seed: 1}.Placements()
	b := Ring{Count: 12, Radius: 2, BaseScale: 0.8, Jitter: 0.4, Seed: 2}.Placements()
	same := true
	for i := range a {
		if a[i].Scale != b[i].Scale {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical scale jitter")
	}
}

func TestPlacementsScaleBounds(t *testing.T) {
	r := Ring{Count: 64, Radius: 1, BaseScale: 1, Jitter: 0.25, Seed: 99}
	for i, p := range r.Placements() {
		if p.Scale < 1 || p.Scale >= 1.25 {
			t.Errorf("placement %d scale %f outside [1, 1.25)", i, p.Scale)
		}
	}
}

func TestPlacementsZeroCount(t *testing.T) {
	got := Ring{Count: 0, Radius: 1}.Placements()
	if got == nil {
		t.Fatal("zero count should yield an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("zero count yielded %d placements", len(got))
	}
}
