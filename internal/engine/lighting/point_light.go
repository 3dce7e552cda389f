package lighting

// PointLightBuffer holds lights in GPU-upload layout. The flat accessors
// always return MaxPointLights worth of data; unused slots are zeroed so the
// shader can loop over a uniform count.
type PointLightBuffer struct {
	Lights []PointLight
	Count  int
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// SetLights replaces all lights in the buffer, truncating to MaxPointLights.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Positions returns positions as a flat float32 slice: [x0, y0, z0, x1, ...].
func (b *PointLightBuffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position[0]
		result[i*3+1] = light.Position[1]
		result[i*3+2] = light.Position[2]
	}
	return result
}

// Colors returns colors as a flat float32 slice: [r0, g0, b0, r1, ...].
func (b *PointLightBuffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0]
		result[i*3+1] = light.Color[1]
		result[i*3+2] = light.Color[2]
	}
	return result
}

// Ranges returns falloff distances as a flat float32 slice.
func (b *PointLightBuffer) Ranges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}

// Intensities returns intensity multipliers as a flat float32 slice.
func (b *PointLightBuffer) Intensities() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Intensity
	}
	return result
}
