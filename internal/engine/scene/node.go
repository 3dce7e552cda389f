// Package scene provides the node hierarchy for the composed object: a tree
// of transformed nodes owning geometry, materials, and optional per-frame
// animation rules.
package scene

import (
	"github.com/frostpine/evergreen/internal/engine/geometry"
	"github.com/frostpine/evergreen/pkg/math"
)

// Transform is a node's local position, Euler rotation (radians), and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// IdentityTransform returns a transform with unit scale and no rotation or
// translation.
func IdentityTransform() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix composes the transform matrix. Scale is applied first, then
// rotation, then translation; this order is fixed across the engine.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// Delta is the per-frame change a Rule requests: an additive rotation and an
// optional absolute scale. Scale is absolute rather than accumulated so
// pulsing cannot drift over long runs.
type Delta struct {
	Rotate   math.Vec3
	Scale    math.Vec3
	SetScale bool
}

// Rule maps elapsed scene time and the frame delta to a transform Delta. A
// rule must be a pure function of its inputs and captured construction-time
// parameters; any accumulation lives in the node's transform.
type Rule func(elapsed, dt float64) Delta

// Node is one positioned entity in the hierarchy. A node exclusively owns
// its children; the tree has no cycles and no shared ownership. Geometry,
// Material, and Rule are all optional.
type Node struct {
	Name     string
	Local    Transform
	World    math.Mat4
	Geometry *geometry.Mesh
	Material *Material
	Rule     Rule

	children []*Node
}

// NewNode creates a node with an identity local transform.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Local: IdentityTransform(),
		World: math.Identity(),
	}
}

// AddChild appends a child. Children keep insertion order; traversal and
// rendering see the same order every frame.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Children returns the child list. The returned slice must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Walk visits the subtree pre-order: the node itself, then each child's
// subtree in insertion order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		child.Walk(visit)
	}
}

// UpdateWorld recomputes world transforms top-down: each node's world matrix
// is the parent's world matrix composed with its own local matrix. Nothing
// is cached across frames.
func (n *Node) UpdateWorld(parentWorld math.Mat4) {
	n.World = parentWorld.Mul(n.Local.Matrix())
	for _, child := range n.children {
		child.UpdateWorld(n.World)
	}
}
