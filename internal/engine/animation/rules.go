// Package animation drives per-frame transform updates: rule constructors,
// the frame scheduler, and the startup reveal tween.
package animation

import (
	gomath "math"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

// Spin returns a rule that rotates the node about the Y axis at the given
// speed in radians per second. direction is +1 or -1; sibling layers use
// alternating directions for the counter-rotation effect.
func Spin(speed float32, direction int) scene.Rule {
	step := float64(speed) * float64(direction)
	return func(_, dt float64) scene.Delta {
		return scene.Delta{Rotate: math.Vec3{Y: float32(step * dt)}}
	}
}

// Pulse returns a rule that sets a uniform scale oscillating around base
// with the given amplitude, frequency (hertz), and phase (radians). The
// scale is computed directly from elapsed time each frame, never
// accumulated, so it cannot drift.
func Pulse(base, amplitude float32, frequency, phase float64) scene.Rule {
	omega := 2 * gomath.Pi * frequency
	return func(elapsed, _ float64) scene.Delta {
		s := base + amplitude*float32(gomath.Sin(omega*elapsed+phase))
		return scene.Delta{Scale: math.Splat(s), SetScale: true}
	}
}

// Combine merges rules into one: rotations add, the last scale-setting rule
// wins.
func Combine(rules ...scene.Rule) scene.Rule {
	return func(elapsed, dt float64) scene.Delta {
		var out scene.Delta
		for _, r := range rules {
			d := r(elapsed, dt)
			out.Rotate = out.Rotate.Add(d.Rotate)
			if d.SetScale {
				out.Scale = d.Scale
				out.SetScale = true
			}
		}
		return out
	}
}
