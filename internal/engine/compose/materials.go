package compose

import "github.com/frostpine/evergreen/internal/engine/scene"

// Appearance palette for the assembled tree. Materials are shared by
// pointer across nodes of the same kind; the renderer treats them as
// read-only.

func needleMaterial() *scene.Material {
	return &scene.Material{
		BaseColor: [3]float32{0.05, 0.38, 0.12},
		Roughness: 0.9,
		Opacity:   1,
		Blend:     scene.BlendOpaque,
	}
}

func ribbonMaterial() *scene.Material {
	return &scene.Material{
		BaseColor:         [3]float32{0.85, 0.68, 0.2},
		Emissive:          [3]float32{0.85, 0.68, 0.2},
		EmissiveIntensity: 0.15,
		Roughness:         0.35,
		Metalness:         0.8,
		Opacity:           1,
		Blend:             scene.BlendOpaque,
	}
}

func trimMaterial() *scene.Material {
	return &scene.Material{
		BaseColor: [3]float32{0.92, 0.92, 0.95},
		Roughness: 0.4,
		Metalness: 0.6,
		Opacity:   1,
		Blend:     scene.BlendOpaque,
	}
}

func starMaterial() *scene.Material {
	return &scene.Material{
		BaseColor:         [3]float32{1, 0.87, 0.35},
		Emissive:          [3]float32{1, 0.87, 0.35},
		EmissiveIntensity: 1.6,
		Roughness:         0.3,
		Metalness:         0.7,
		Opacity:           1,
		Blend:             scene.BlendOpaque,
	}
}

func trunkMaterial() *scene.Material {
	return &scene.Material{
		BaseColor: [3]float32{0.35, 0.22, 0.1},
		Roughness: 1,
		Opacity:   1,
		Blend:     scene.BlendOpaque,
	}
}

// ornamentPalette cycles per ornament index so neighbors differ in color.
// The emissive term feeds the renderer's point lights.
func ornamentPalette() []*scene.Material {
	colors := [][3]float32{
		{0.85, 0.12, 0.14},
		{0.95, 0.75, 0.2},
		{0.2, 0.4, 0.85},
		{0.75, 0.2, 0.7},
	}
	mats := make([]*scene.Material, len(colors))
	for i, c := range colors {
		mats[i] = &scene.Material{
			BaseColor:         c,
			Emissive:          c,
			EmissiveIntensity: 0.9,
			Roughness:         0.25,
			Metalness:         0.5,
			Opacity:           1,
			Blend:             scene.BlendOpaque,
		}
	}
	return mats
}
