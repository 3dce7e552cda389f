// Package layout computes deterministic placements for decorative
// sub-objects distributed around a radius.
package layout

import (
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// Placement is one solved position plus a per-object scale factor.
type Placement struct {
	Position math.Vec3
	Scale    float32
}

// Ring describes an undulating ring of placements. The vertical wave is a
// design choice, not noise: objects rise and fall around the circle instead
// of sitting on a flat disc. Scale jitter is keyed by index and seed, so a
// given seed always reproduces the same layout.
type Ring struct {
	Count         int
	Radius        float32
	BaseY         float32
	WaveAmplitude float32
	WaveFrequency float32
	BaseScale     float32
	Jitter        float32 // jitter range; each scale lands in [BaseScale, BaseScale+Jitter)
	Seed          uint64
}

// Placements solves the ring. A Count of zero yields an empty slice. The
// result depends only on the Ring fields; calling twice returns identical
// output.
func (r Ring) Placements() []Placement {
	if r.Count <= 0 {
		return []Placement{}
	}

	out := make([]Placement, 0, r.Count)
	for i := 0; i < r.Count; i++ {
		angle := float64(i) / float64(r.Count) * 2 * gomath.Pi
		wave := gomath.Sin(angle * float64(r.WaveFrequency))
		out = append(out, Placement{
			Position: math.Vec3{
				X: float32(gomath.Cos(angle)) * r.Radius,
				Y: r.BaseY + float32(wave)*r.WaveAmplitude,
				Z: float32(gomath.Sin(angle)) * r.Radius,
			},
			Scale: r.BaseScale + jitter(i, r.Seed)*r.Jitter,
		})
	}
	return out
}

// jitter hashes (index, seed) to [0, 1). It is a pure function with no
// shared state, safe to call from any goroutine.
func jitter(i int, seed uint64) float32 {
	// splitmix64 finalizer over the seeded index.
	x := seed + uint64(i+1)*0x9E3779B97F4A7C15
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float32(x>>40) / float32(1<<24)
}
