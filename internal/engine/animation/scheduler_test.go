package animation

import (
	gomath "math"
	"testing"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

func spinningScene(speed float32, direction int) (*scene.Scene, *scene.Node) {
	root := scene.NewNode("root")
	n := scene.NewNode("spinner")
	n.Rule = Spin(speed, direction)
	root.AddChild(n)
	return scene.New(root), n
}

func TestTickAdvancesClockAndRotation(t *testing.T) {
	s, n := spinningScene(0.5, 1)
	var sched Scheduler

	if !sched.Tick(s, 0.1) {
		t.Fatal("valid dt rejected")
	}
	if gomath.Abs(s.Elapsed-0.1) > 1e-12 {
		t.Errorf("elapsed = %f, want 0.1", s.Elapsed)
	}
	if gomath.Abs(float64(n.Local.Rotation.Y)-0.05) > 1e-6 {
		t.Errorf("rotation = %f, want 0.05", n.Local.Rotation.Y)
	}
}

func TestTickRejectsBadDelta(t *testing.T) {
	s, n := spinningScene(1, 1)
	var sched Scheduler
	sched.Tick(s, 1)
	wantRot := n.Local.Rotation
	wantElapsed := s.Elapsed

	for _, dt := range []float64{0, -1, gomath.NaN(), gomath.Inf(1)} {
		if sched.Tick(s, dt) {
			t.Errorf("Tick accepted dt=%v", dt)
		}
		if s.Elapsed != wantElapsed {
			t.Errorf("dt=%v advanced the clock to %f", dt, s.Elapsed)
		}
		if n.Local.Rotation != wantRot {
			t.Errorf("dt=%v mutated rotation to %v", dt, n.Local.Rotation)
		}
	}
}

func TestTickLinearity(t *testing.T) {
	// N frames then M frames of the same dt matches N+M frames directly.
	const dt = 1.0 / 60
	a, an := spinningScene(0.7, 1)
	b, bn := spinningScene(0.7, 1)
	var sched Scheduler

	for i := 0; i < 30; i++ {
		sched.Tick(a, dt)
	}
	for i := 0; i < 45; i++ {
		sched.Tick(a, dt)
	}
	for i := 0; i < 75; i++ {
		sched.Tick(b, dt)
	}

	if a.Elapsed != b.Elapsed {
		t.Errorf("elapsed differs: %f vs %f", a.Elapsed, b.Elapsed)
	}
	if an.Local.Rotation != bn.Local.Rotation {
		t.Errorf("rotation differs: %v vs %v", an.Local.Rotation, bn.Local.Rotation)
	}
}

func TestTickDeterministic(t *testing.T) {
	build := func() (*scene.Scene, *scene.Node) {
		root := scene.NewNode("root")
		n := scene.NewNode("topper")
		n.Rule = Combine(Spin(0.6, 1), Pulse(1, 0.12, 0.5, 0))
		root.AddChild(n)
		return scene.New(root), n
	}
	a, an := build()
	b, bn := build()
	var sched Scheduler

	deltas := []float64{0.016, 0.017, 0.015, 0.033, 0.016}
	for _, dt := range deltas {
		sched.Tick(a, dt)
		sched.Tick(b, dt)
	}

	if an.Local != bn.Local {
		t.Errorf("transforms differ after identical delta sequences: %+v vs %+v", an.Local, bn.Local)
	}
	if an.World != bn.World {
		t.Error("world matrices differ after identical delta sequences")
	}
}

func TestCounterRotation(t *testing.T) {
	root := scene.NewNode("root")
	even := scene.NewNode("layer-0")
	even.Rule = Spin(0.4, 1)
	odd := scene.NewNode("layer-1")
	odd.Rule = Spin(0.4, -1)
	root.AddChild(even)
	root.AddChild(odd)
	s := scene.New(root)
	var sched Scheduler

	for i := 0; i < 100; i++ {
		sched.Tick(s, 0.05)
	}

	if even.Local.Rotation.Y <= 0 {
		t.Errorf("even layer rotation = %f, want positive", even.Local.Rotation.Y)
	}
	if odd.Local.Rotation.Y >= 0 {
		t.Errorf("odd layer rotation = %f, want negative", odd.Local.Rotation.Y)
	}
	sum := float64(even.Local.Rotation.Y + odd.Local.Rotation.Y)
	if gomath.Abs(sum) > 1e-5 {
		t.Errorf("rotations should cancel, sum = %f", sum)
	}
}

func TestRotationWraps(t *testing.T) {
	s, n := spinningScene(1, 1)
	var sched Scheduler
	// Accumulate far past a full turn.
	for i := 0; i < 1000; i++ {
		sched.Tick(s, 0.1)
	}
	if y := float64(n.Local.Rotation.Y); y < 0 || y >= 2*gomath.Pi {
		t.Errorf("rotation %f left [0, 2pi)", y)
	}
}

func TestPulseBoundedAndNonAccumulating(t *testing.T) {
	root := scene.NewNode("root")
	n := scene.NewNode("topper")
	n.Rule = Pulse(1, 0.12, 0.5, 0)
	root.AddChild(n)
	s := scene.New(root)
	var sched Scheduler

	for i := 0; i < 600; i++ {
		sched.Tick(s, 1.0/60)
		sc := float64(n.Local.Scale.Y)
		if sc < 1-0.12-1e-5 || sc > 1+0.12+1e-5 {
			t.Fatalf("frame %d: pulse scale %f outside amplitude bounds", i, sc)
		}
	}
}

func TestChildSeesCurrentParentWorld(t *testing.T) {
	root := scene.NewNode("root")
	parent := scene.NewNode("parent")
	parent.Rule = Spin(gomath.Pi/2, 1) // quarter turn per second
	child := scene.NewNode("child")
	child.Local.Position = math.Vec3{X: 1}
	parent.AddChild(child)
	root.AddChild(parent)
	s := scene.New(root)
	var sched Scheduler

	sched.Tick(s, 1)

	// After one second the parent has yawed a quarter turn, so the child's
	// world position reflects this frame's parent rotation, not a stale one.
	got := child.World.Translation()
	want := math.Vec3{Z: -1}
	if got.Distance(want) > 1e-5 {
		t.Errorf("child world = %v, want %v", got, want)
	}
}

func TestCombineMergesRules(t *testing.T) {
	r := Combine(Spin(1, 1), Spin(1, 1), Pulse(2, 0, 1, 0))
	d := r(0.25, 0.5)
	if gomath.Abs(float64(d.Rotate.Y)-1.0) > 1e-6 {
		t.Errorf("combined rotation = %f, want 1.0", d.Rotate.Y)
	}
	if !d.SetScale || d.Scale.X != 2 {
		t.Errorf("combined scale = %+v, want uniform 2", d.Scale)
	}
}
