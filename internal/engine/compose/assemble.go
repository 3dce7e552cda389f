package compose

import (
	"fmt"

	"github.com/frostpine/evergreen/internal/engine/animation"
	"github.com/frostpine/evergreen/internal/engine/geometry"
	"github.com/frostpine/evergreen/internal/engine/layout"
	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

const (
	coneSegments   = 48
	sphereSegments = 24

	ribbonTurns    = 3
	ribbonSamples  = 96
	ribbonSegments = 12
	ribbonRadius   = 0.045

	trimTubeRadius = 0.035

	// Per-layer seed stride keeps ornament jitter streams disjoint between
	// layers while staying reproducible from the scene seed.
	layerSeedStride = 1000003
)

// Assemble builds the full scene tree from the specs. Validation runs up
// front over every spec, so either the whole tree is built or nothing is.
// Layer spin direction alternates by index parity: even layers rotate
// positive, odd layers negative.
func Assemble(layers []LayerSpec, topper TopperSpec, base BaseSpec, seed uint64) (*scene.Scene, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: need at least one layer", ErrInvalidSpec)
	}
	for i, l := range layers {
		if err := l.validate(i); err != nil {
			return nil, err
		}
	}
	if err := topper.validate(); err != nil {
		return nil, err
	}
	if err := base.validate(); err != nil {
		return nil, err
	}

	root := scene.NewNode("tree")
	ornMats := ornamentPalette()

	for i, spec := range layers {
		layerNode, err := buildLayer(i, spec, seed, ornMats)
		if err != nil {
			return nil, err
		}
		root.AddChild(layerNode)
	}

	topperNode, err := buildTopper(topper)
	if err != nil {
		return nil, err
	}
	root.AddChild(topperNode)

	baseNode, err := buildBase(base)
	if err != nil {
		return nil, err
	}
	root.AddChild(baseNode)

	return scene.New(root), nil
}

func buildLayer(index int, spec LayerSpec, seed uint64, ornMats []*scene.Material) (*scene.Node, error) {
	direction := 1
	if index%2 == 1 {
		direction = -1
	}

	layerNode := scene.NewNode(fmt.Sprintf("layer-%d", index))
	layerNode.Local.Position = math.Vec3{Y: spec.OffsetY}
	layerNode.Local.Scale = math.Splat(spec.Scale)
	layerNode.Rule = animation.Spin(spec.SpinSpeed, direction)

	cone, err := geometry.BuildCone(spec.RadiusBottom, spec.RadiusTop, spec.Height, coneSegments)
	if err != nil {
		return nil, fmt.Errorf("layer %d cone: %w", index, err)
	}
	coneNode := scene.NewNode(fmt.Sprintf("layer-%d-cone", index))
	coneNode.Geometry = cone
	coneNode.Material = needleMaterial()
	layerNode.AddChild(coneNode)

	curve, err := geometry.BuildWrapCurve(
		spec.RadiusBottom, spec.RadiusTop, spec.Height,
		ribbonTurns, ribbonSamples, ribbonRadius)
	if err != nil {
		return nil, fmt.Errorf("layer %d ribbon curve: %w", index, err)
	}
	ribbon, err := geometry.SweepTube(curve, ribbonRadius, ribbonSamples, ribbonSegments)
	if err != nil {
		return nil, fmt.Errorf("layer %d ribbon sweep: %w", index, err)
	}
	ribbonNode := scene.NewNode(fmt.Sprintf("layer-%d-ribbon", index))
	ribbonNode.Geometry = ribbon
	ribbonNode.Material = ribbonMaterial()
	layerNode.AddChild(ribbonNode)

	trim, err := geometry.BuildTorus(spec.RadiusBottom, trimTubeRadius, ribbonSegments, coneSegments)
	if err != nil {
		return nil, fmt.Errorf("layer %d trim: %w", index, err)
	}
	trimNode := scene.NewNode(fmt.Sprintf("layer-%d-trim", index))
	trimNode.Geometry = trim
	trimNode.Material = trimMaterial()
	trimNode.Local.Position = math.Vec3{Y: -spec.Height / 2}
	layerNode.AddChild(trimNode)

	if spec.Ornaments > 0 {
		// One unit sphere shared by every ornament on the layer; per-node
		// scale comes from the placement solver.
		sphere, err := geometry.BuildSphere(1, sphereSegments, sphereSegments/2)
		if err != nil {
			return nil, fmt.Errorf("layer %d ornament sphere: %w", index, err)
		}
		ring := layout.Ring{
			Count:         spec.Ornaments,
			Radius:        spec.RadiusBottom * 0.85,
			BaseY:         -spec.Height * 0.25,
			WaveAmplitude: spec.Height * 0.12,
			WaveFrequency: 2,
			BaseScale:     0.09,
			Jitter:        0.05,
			Seed:          seed + uint64(index)*layerSeedStride,
		}
		for j, p := range ring.Placements() {
			orn := scene.NewNode(fmt.Sprintf("layer-%d-ornament-%d", index, j))
			orn.Geometry = sphere
			orn.Material = ornMats[j%len(ornMats)]
			orn.Local.Position = p.Position
			orn.Local.Scale = math.Splat(p.Scale)
			layerNode.AddChild(orn)
		}
	}

	return layerNode, nil
}

func buildTopper(spec TopperSpec) (*scene.Node, error) {
	star, err := geometry.BuildStar(spec.Points, spec.OuterRadius, spec.InnerRadius, spec.Depth)
	if err != nil {
		return nil, fmt.Errorf("topper star: %w", err)
	}
	node := scene.NewNode("topper")
	node.Geometry = star
	node.Material = starMaterial()
	node.Local.Position = math.Vec3{Y: spec.OffsetY}
	node.Rule = animation.Combine(
		animation.Spin(spec.SpinSpeed, 1),
		animation.Pulse(1, spec.PulseAmplitude, spec.PulseFrequency, 0),
	)
	return node, nil
}

func buildBase(spec BaseSpec) (*scene.Node, error) {
	trunk, err := geometry.BuildCylinder(spec.Radius, spec.Height, coneSegments)
	if err != nil {
		return nil, fmt.Errorf("base trunk: %w", err)
	}
	node := scene.NewNode("base")
	node.Geometry = trunk
	node.Material = trunkMaterial()
	node.Local.Position = math.Vec3{Y: spec.OffsetY}
	return node, nil
}
