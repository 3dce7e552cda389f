package lighting

import (
	gomath "math"
	"testing"

	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/pkg/math"
)

func emissiveNode(name string, y float32, intensity float32) *scene.Node {
	n := scene.NewNode(name)
	n.Local.Position = math.Vec3{Y: y}
	n.Material = &scene.Material{
		Emissive:          [3]float32{1, 0.5, 0.2},
		EmissiveIntensity: intensity,
	}
	return n
}

func TestKeyLightDirectionNormalized(t *testing.T) {
	for _, az := range []float32{0, 45, 120, 300} {
		d := KeyLightDirection(az, 35)
		l := gomath.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if gomath.Abs(l-1) > 1e-5 {
			t.Errorf("direction at azimuth %v has length %v", az, l)
		}
	}
	up := KeyLightDirection(0, 90)
	if gomath.Abs(float64(up[1]-1)) > 1e-5 {
		t.Errorf("elevation 90 should point straight up, got %v", up)
	}
}

func TestCollectEmissive(t *testing.T) {
	root := scene.NewNode("root")
	root.AddChild(emissiveNode("glow-a", 1, 0.5))
	dark := scene.NewNode("dark")
	dark.Material = &scene.Material{BaseColor: [3]float32{1, 1, 1}}
	root.AddChild(dark)
	root.AddChild(emissiveNode("glow-b", 2, 1.5))
	s := scene.New(root)

	lights := CollectEmissive(s, 0)
	if len(lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(lights))
	}
	if lights[0].Position != [3]float32{0, 1, 0} {
		t.Errorf("first light at %v, want world position (0,1,0)", lights[0].Position)
	}
	if lights[1].Intensity != 1.5 {
		t.Errorf("second light intensity = %v, want 1.5", lights[1].Intensity)
	}
}

func TestCollectEmissiveUsesWorldPosition(t *testing.T) {
	root := scene.NewNode("root")
	root.Local.Position = math.Vec3{X: 3}
	root.AddChild(emissiveNode("glow", 1, 1))
	s := scene.New(root)

	lights := CollectEmissive(s, 0)
	if len(lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(lights))
	}
	if lights[0].Position != [3]float32{3, 1, 0} {
		t.Errorf("light at %v, want parent offset applied", lights[0].Position)
	}
}

func TestCollectEmissiveRespectsLimit(t *testing.T) {
	root := scene.NewNode("root")
	for i := 0; i < MaxPointLights+5; i++ {
		root.AddChild(emissiveNode("glow", float32(i), 1))
	}
	s := scene.New(root)

	if got := len(CollectEmissive(s, 4)); got != 4 {
		t.Errorf("limit 4 returned %d lights", got)
	}
	if got := len(CollectEmissive(s, 0)); got != MaxPointLights {
		t.Errorf("limit 0 returned %d lights, want cap %d", got, MaxPointLights)
	}
}

func TestPointLightBufferFlatLayout(t *testing.T) {
	b := NewPointLightBuffer()
	b.SetLights([]PointLight{
		{Position: [3]float32{1, 2, 3}, Color: [3]float32{1, 0, 0}, Range: 2, Intensity: 0.5},
		{Position: [3]float32{4, 5, 6}, Color: [3]float32{0, 1, 0}, Range: 3, Intensity: 1},
	})

	if b.Count != 2 {
		t.Fatalf("Count = %d, want 2", b.Count)
	}
	pos := b.Positions()
	if len(pos) != MaxPointLights*3 {
		t.Fatalf("Positions length = %d", len(pos))
	}
	if pos[3] != 4 || pos[4] != 5 || pos[5] != 6 {
		t.Errorf("second light position slots = %v", pos[3:6])
	}
	if pos[6] != 0 {
		t.Error("unused slots must be zeroed")
	}
	if r := b.Ranges(); r[0] != 2 || r[1] != 3 {
		t.Errorf("Ranges = %v %v", r[0], r[1])
	}
}

func TestPointLightBufferTruncates(t *testing.T) {
	lights := make([]PointLight, MaxPointLights+10)
	b := NewPointLightBuffer()
	b.SetLights(lights)
	if b.Count != MaxPointLights {
		t.Errorf("Count = %d, want %d", b.Count, MaxPointLights)
	}
}
