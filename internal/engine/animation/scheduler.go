package animation

import (
	gomath "math"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

// Scheduler advances a scene by one frame at a time. It holds no state of
// its own; all accumulation lives in the scene and its nodes, so two
// schedulers fed identical delta sequences produce identical transforms.
type Scheduler struct{}

// Tick advances the scene clock by dt seconds, applies every node's rule,
// and recomputes world transforms top-down. A non-positive or non-finite dt
// is rejected: the frame is skipped, the clock does not advance, and Tick
// reports false. The caller's render loop keeps going either way, drawing
// the previous transforms.
func (Scheduler) Tick(s *scene.Scene, dt float64) bool {
	if !(dt > 0) || gomath.IsInf(dt, 1) {
		return false
	}

	s.Elapsed += dt

	s.Root.Walk(func(n *scene.Node) {
		if n.Rule == nil {
			return
		}
		d := n.Rule(s.Elapsed, dt)
		n.Local.Rotation = wrapAngles(n.Local.Rotation.Add(d.Rotate))
		if d.SetScale {
			n.Local.Scale = d.Scale
		}
	})

	// World pass runs after every local transform is settled, so a child
	// always composes against its parent's current-frame world matrix.
	s.Root.UpdateWorld(math.Identity())

	return true
}

// wrapAngles reduces each component modulo 2*pi, preserving sign, to keep
// accumulated rotations numerically stable over long runs.
func wrapAngles(v math.Vec3) math.Vec3 {
	const tau = 2 * gomath.Pi
	return math.Vec3{
		X: float32(gomath.Mod(float64(v.X), tau)),
		Y: float32(gomath.Mod(float64(v.Y), tau)),
		Z: float32(gomath.Mod(float64(v.Z), tau)),
	}
}
