package animation

import (
	gomath "math"
	"testing"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

func revealNodes(n int) []*scene.Node {
	nodes := make([]*scene.Node, n)
	for i := range nodes {
		nodes[i] = scene.NewNode("layer")
		nodes[i].Local.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	}
	return nodes
}

func TestRevealStartsAtZeroScale(t *testing.T) {
	nodes := revealNodes(2)
	NewReveal(nodes, 1, 0.25)
	for i, n := range nodes {
		if n.Local.Scale != (math.Vec3{}) {
			t.Errorf("node %d scale = %v, want zero at reveal start", i, n.Local.Scale)
		}
	}
}

func TestRevealReachesTargetScale(t *testing.T) {
	nodes := revealNodes(3)
	r := NewReveal(nodes, 0.5, 0.1)

	done := false
	for i := 0; i < 300 && !done; i++ {
		done = r.Update(1.0 / 60)
	}
	if !done {
		t.Fatal("reveal never finished")
	}
	for i, n := range nodes {
		if gomath.Abs(float64(n.Local.Scale.X-2)) > 1e-4 {
			t.Errorf("node %d final scale = %v, want 2", i, n.Local.Scale)
		}
	}
}

func TestRevealStagger(t *testing.T) {
	nodes := revealNodes(2)
	r := NewReveal(nodes, 1, 0.5)

	// After 0.3s the second node's delay has not elapsed yet.
	for i := 0; i < 18; i++ {
		r.Update(1.0 / 60)
	}
	if nodes[0].Local.Scale == (math.Vec3{}) {
		t.Error("first node should have started growing")
	}
	if nodes[1].Local.Scale != (math.Vec3{}) {
		t.Errorf("second node grew before its stagger delay: %v", nodes[1].Local.Scale)
	}
}

func TestRevealSkip(t *testing.T) {
	nodes := revealNodes(2)
	r := NewReveal(nodes, 1, 0.5)
	r.Skip()
	if !r.Done() {
		t.Error("Skip should finish the reveal")
	}
	for i, n := range nodes {
		if n.Local.Scale != (math.Vec3{X: 2, Y: 2, Z: 2}) {
			t.Errorf("node %d scale = %v after skip, want target", i, n.Local.Scale)
		}
	}
}

func TestRevealOverridesRuleScale(t *testing.T) {
	root := scene.NewNode("root")
	star := scene.NewNode("star")
	star.Rule = Combine(Spin(0.8, 1), Pulse(1, 0.15, 0.5, 0))
	root.AddChild(star)
	s := scene.New(root)

	r := NewReveal([]*scene.Node{star}, 1, 0)
	var sched Scheduler
	const dt = 1.0 / 60

	// Host loop order: rule pass first, then the reveal writes the tween
	// scale and world transforms are refreshed.
	step := func() bool {
		sched.Tick(s, dt)
		done := r.Update(dt)
		root.UpdateWorld(math.Identity())
		return done
	}

	step()
	if star.Local.Scale.X > 0.5 {
		t.Fatalf("local scale = %v one frame in, pulse rule overrode the grow-in", star.Local.Scale)
	}
	if w := star.World.TransformDirection(math.Vec3{X: 1}).Length(); w > 0.5 {
		t.Fatalf("world scale = %v one frame in, tween never reached the world transform", w)
	}

	done := false
	for i := 0; i < 600 && !done; i++ {
		done = step()
	}
	if !done {
		t.Fatal("reveal never finished")
	}
	if gomath.Abs(float64(star.Local.Scale.X-1)) > 1e-3 {
		t.Errorf("final scale = %v, want the captured target 1", star.Local.Scale)
	}
}

func TestRevealEmpty(t *testing.T) {
	r := NewReveal(nil, 1, 0.5)
	if !r.Done() {
		t.Error("empty reveal should start done")
	}
	if !r.Update(0.016) {
		t.Error("empty reveal Update should report done")
	}
}
