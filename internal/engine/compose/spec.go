// Package compose assembles the full decorated tree from immutable specs:
// stacked counter-rotating layers, a pulsing star topper, and a static base.
// Assembly runs exactly once at startup; per-frame work belongs to the
// animation scheduler.
package compose

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is wrapped by every validation failure. A failed Assemble
// returns no partial scene.
var ErrInvalidSpec = errors.New("invalid composition spec")

// LayerSpec configures one cone layer of the stack. Vertical offsets are
// authored per layer, not derived from heights, so the stack overlap is a
// design knob.
type LayerSpec struct {
	RadiusBottom float32
	RadiusTop    float32
	Height       float32
	Ornaments    int
	OffsetY      float32
	Scale        float32
	SpinSpeed    float32 // radians per second; sign is chosen by layer parity
}

// TopperSpec configures the star at the top of the stack.
type TopperSpec struct {
	Points         int
	OuterRadius    float32
	InnerRadius    float32
	Depth          float32
	OffsetY        float32
	SpinSpeed      float32
	PulseAmplitude float32
	PulseFrequency float64 // hertz
}

// BaseSpec configures the static trunk cylinder under the stack.
type BaseSpec struct {
	Radius  float32
	Height  float32
	OffsetY float32
}

func (s LayerSpec) validate(i int) error {
	switch {
	case s.RadiusBottom <= 0:
		return fmt.Errorf("%w: layer %d: bottom radius %v must be positive", ErrInvalidSpec, i, s.RadiusBottom)
	case s.RadiusTop < 0:
		return fmt.Errorf("%w: layer %d: top radius %v must be non-negative", ErrInvalidSpec, i, s.RadiusTop)
	case s.Height <= 0:
		return fmt.Errorf("%w: layer %d: height %v must be positive", ErrInvalidSpec, i, s.Height)
	case s.Ornaments < 0:
		return fmt.Errorf("%w: layer %d: ornament count %d must be non-negative", ErrInvalidSpec, i, s.Ornaments)
	case s.Scale <= 0:
		return fmt.Errorf("%w: layer %d: scale %v must be positive", ErrInvalidSpec, i, s.Scale)
	}
	return nil
}

func (s TopperSpec) validate() error {
	switch {
	case s.Points < 3:
		return fmt.Errorf("%w: topper: %d points, need at least 3", ErrInvalidSpec, s.Points)
	case s.InnerRadius <= 0 || s.OuterRadius <= s.InnerRadius:
		return fmt.Errorf("%w: topper: radii outer %v inner %v", ErrInvalidSpec, s.OuterRadius, s.InnerRadius)
	case s.Depth <= 0:
		return fmt.Errorf("%w: topper: depth %v must be positive", ErrInvalidSpec, s.Depth)
	case s.PulseAmplitude < 0:
		return fmt.Errorf("%w: topper: pulse amplitude %v must be non-negative", ErrInvalidSpec, s.PulseAmplitude)
	case s.PulseAmplitude >= 1:
		return fmt.Errorf("%w: topper: pulse amplitude %v would collapse the scale through zero", ErrInvalidSpec, s.PulseAmplitude)
	}
	return nil
}

func (s BaseSpec) validate() error {
	if s.Radius <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: base: radius %v and height %v must be positive", ErrInvalidSpec, s.Radius, s.Height)
	}
	return nil
}
