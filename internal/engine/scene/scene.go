package scene

import "github.com/frostpine/evergreen/pkg/math"

// Scene owns the root node and the simulated clock. Elapsed starts at zero
// and only moves forward; it is advanced exclusively by the animation
// scheduler.
type Scene struct {
	Root    *Node
	Elapsed float64
}

// New wraps a root node in a scene with the clock at zero.
func New(root *Node) *Scene {
	root.UpdateWorld(math.Identity())
	return &Scene{Root: root}
}

// NodeCount returns the total number of nodes in the tree.
func (s *Scene) NodeCount() int {
	count := 0
	s.Root.Walk(func(*Node) { count++ })
	return count
}

// Find returns the first node with the given name in pre-order, or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Root.Walk(func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}
