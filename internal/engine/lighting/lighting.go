// Package lighting collects light sources for the renderer: one directional
// key light plus point lights harvested from emissive scene nodes.
package lighting

import (
	gomath "math"

	"github.com/frostpine/evergreen/internal/engine/scene"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 16

// KeyLightDirection converts azimuth/elevation angles in degrees to a
// normalized direction vector pointing towards the light.
func KeyLightDirection(azimuth, elevation float32) [3]float32 {
	azRad := float64(azimuth) * gomath.Pi / 180.0
	elRad := float64(elevation) * gomath.Pi / 180.0

	x := float32(gomath.Cos(elRad) * gomath.Sin(azRad))
	y := float32(gomath.Sin(elRad))
	z := float32(gomath.Cos(elRad) * gomath.Cos(azRad))

	return [3]float32{x, y, z}
}

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  [3]float32
	Color     [3]float32 // RGB, 0-1 range
	Range     float32    // falloff distance
	Intensity float32
}

// CollectEmissive walks the scene and emits one point light per node whose
// material has a positive emissive intensity, positioned at the node's
// current world translation. Traversal is pre-order, so when the scene holds
// more emitters than limit the same ones win every frame.
func CollectEmissive(s *scene.Scene, limit int) []PointLight {
	if limit <= 0 || limit > MaxPointLights {
		limit = MaxPointLights
	}

	lights := make([]PointLight, 0, limit)
	s.Root.Walk(func(n *scene.Node) {
		if len(lights) >= limit {
			return
		}
		m := n.Material
		if m == nil || m.EmissiveIntensity <= 0 {
			return
		}
		pos := n.World.Translation()
		lights = append(lights, PointLight{
			Position:  [3]float32{pos.X, pos.Y, pos.Z},
			Color:     clampColor(m.Emissive),
			Range:     2.5,
			Intensity: m.EmissiveIntensity,
		})
	})
	return lights
}

func clampColor(c [3]float32) [3]float32 {
	for i := range c {
		if c[i] > 1 {
			c[i] = 1
		}
		if c[i] < 0 {
			c[i] = 0
		}
	}
	return c
}
