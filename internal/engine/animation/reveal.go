package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

// Reveal grows a set of nodes in from zero scale when the viewer starts,
// staggered so the object assembles bottom-up. It runs outside the frame
// scheduler: the host loop calls Update after the scheduler's tick, so the
// tween scale overrides any rule-driven scale until the grow-in finishes,
// and then refreshes world transforms. Once every tween finishes the reveal
// goes inert.
type Reveal struct {
	entries []revealEntry
	done    bool
}

type revealEntry struct {
	node   *scene.Node
	target math.Vec3
	tween  *gween.Tween
	delay  float32
}

// NewReveal captures each node's current scale as its target, zeroes it, and
// schedules a tween per node. duration is seconds per node; stagger is the
// delay between consecutive node starts.
func NewReveal(nodes []*scene.Node, duration, stagger float32) *Reveal {
	r := &Reveal{}
	for i, n := range nodes {
		r.entries = append(r.entries, revealEntry{
			node:   n,
			target: n.Local.Scale,
			tween:  gween.New(0, 1, duration, ease.OutBack),
			delay:  stagger * float32(i),
		})
		n.Local.Scale = math.Vec3{}
	}
	if len(nodes) == 0 {
		r.done = true
	}
	return r
}

// Update advances all tweens by dt seconds and writes scales to the nodes.
// Returns true once every tween has finished.
func (r *Reveal) Update(dt float32) bool {
	if r.done {
		return true
	}

	allDone := true
	for i := range r.entries {
		e := &r.entries[i]
		step := dt
		if e.delay > 0 {
			if e.delay >= step {
				e.delay -= step
				allDone = false
				continue
			}
			step -= e.delay
			e.delay = 0
		}
		v, finished := e.tween.Update(step)
		e.node.Local.Scale = e.target.Scale(v)
		if !finished {
			allDone = false
		}
	}
	r.done = allDone
	return r.done
}

// Skip ends the reveal immediately, restoring every node's target scale.
func (r *Reveal) Skip() {
	for i := range r.entries {
		r.entries[i].node.Local.Scale = r.entries[i].target
	}
	r.done = true
}

// Done reports whether the reveal has finished.
func (r *Reveal) Done() bool {
	return r.done
}
