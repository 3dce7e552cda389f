package scene

// BlendMode selects how a surface is composited.
type BlendMode int

const (
	BlendOpaque BlendMode = iota
	BlendAlpha
	BlendAdditive
)

// Material is a flat appearance descriptor consumed by the renderer. It has
// no effect on animation or layout.
type Material struct {
	BaseColor         [3]float32
	Emissive          [3]float32
	EmissiveIntensity float32
	Roughness         float32
	Metalness         float32
	Opacity           float32
	Blend             BlendMode
}

// DefaultMaterial returns a matte white opaque material.
func DefaultMaterial() *Material {
	return &Material{
		BaseColor: [3]float32{1, 1, 1},
		Roughness: 0.8,
		Opacity:   1,
		Blend:     BlendOpaque,
	}
}
