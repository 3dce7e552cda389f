package renderer

import (
	"fmt"
	gomath "math"
	"math/rand"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/frostpine/evergreen/internal/engine/shader"
	"github.com/frostpine/evergreen/pkg/math"
)

// Snow is an ambient particle field drawn as point sprites. Flakes fall at
// individually jittered speeds inside a cube centered on the origin and wrap
// back to the top when they pass the floor. The field is seeded, so a run
// with the same seed shows the same flakes.
type Snow struct {
	program   uint32
	vao       uint32
	vbo       uint32
	uViewProj int32
	uSize     int32

	area      float32
	fallSpeed float32

	positions []float32 // x, y, z per flake
	speeds    []float32
	drift     []float32 // horizontal sway phase per flake
	elapsed   float32
}

// SnowConfig holds particle field parameters.
type SnowConfig struct {
	Count     int
	Area      float32 // side length of the fall volume
	FallSpeed float32
	Seed      int64
}

// NewSnow creates the particle field and its GPU resources. Must be called
// after the OpenGL context exists.
func NewSnow(cfg SnowConfig) (*Snow, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("snow count must be positive, got %d", cfg.Count)
	}
	if cfg.Area <= 0 {
		return nil, fmt.Errorf("snow area must be positive, got %f", cfg.Area)
	}

	s := &Snow{
		area:      cfg.Area,
		fallSpeed: cfg.FallSpeed,
		positions: make([]float32, cfg.Count*3),
		speeds:    make([]float32, cfg.Count),
		drift:     make([]float32, cfg.Count),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	half := cfg.Area / 2
	for i := 0; i < cfg.Count; i++ {
		s.positions[i*3+0] = (rng.Float32()*2 - 1) * half
		s.positions[i*3+1] = (rng.Float32()*2 - 1) * half
		s.positions[i*3+2] = (rng.Float32()*2 - 1) * half
		s.speeds[i] = 0.5 + rng.Float32()
		s.drift[i] = rng.Float32() * 6.28318
	}

	var err error
	s.program, err = shader.CompileProgram(snowVertexShader, snowFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("snow shader: %w", err)
	}
	s.uViewProj = shader.GetUniform(s.program, "uViewProj")
	s.uSize = shader.GetUniform(s.program, "uPointSize")

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(s.positions)*4,
		unsafe.Pointer(&s.positions[0]),
		gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return s, nil
}

// Update advances the flakes by dt seconds.
func (s *Snow) Update(dt float32) {
	s.elapsed += dt
	half := s.area / 2
	for i := range s.speeds {
		y := s.positions[i*3+1] - s.speeds[i]*s.fallSpeed*dt
		if y < -half {
			y += s.area
		}
		s.positions[i*3+1] = y
		s.positions[i*3+0] += sin32(s.elapsed+s.drift[i]) * 0.15 * dt
	}
}

// Draw renders the flakes with additive-free alpha blending over the scene.
func (s *Snow) Draw(viewProj math.Mat4) {
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(s.positions)*4, unsafe.Pointer(&s.positions[0]))

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1f(s.uSize, 40)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(len(s.speeds)))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Close releases GPU resources.
func (s *Snow) Close() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}

func sin32(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}
