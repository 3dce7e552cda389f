// Package camera provides the orbit camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/frostpine/evergreen/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Idle auto-orbit, radians per second. Zero disables it.
	AutoOrbitSpeed float32
}

// NewOrbitCamera creates an orbit camera with defaults sized for an object a
// few units tall.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        9.0,
		RotationX:       0.35,
		RotationY:       0.0,
		MinDistance:     3.0,
		MaxDistance:     40.0,
		MinPitch:        -0.2,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// AutoOrbit advances the yaw by AutoOrbitSpeed. The caller decides when the
// camera is idle; dragging and auto-orbit should not fight each other.
func (c *OrbitCamera) AutoOrbit(dt float32) {
	c.RotationY += c.AutoOrbitSpeed * dt
	if c.RotationY > 2*gomath.Pi {
		c.RotationY -= 2 * gomath.Pi
	}
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(center math.Vec3) {
	c.Center = center
}
