// Package renderer draws the scene tree with OpenGL.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/frostpine/evergreen/internal/engine/geometry"
	"github.com/frostpine/evergreen/internal/engine/lighting"
	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/internal/engine/shader"
	"github.com/frostpine/evergreen/internal/logger"
	"github.com/frostpine/evergreen/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // vertical field of view, radians
}

// meshBuffer is the GPU-side copy of one geometry.Mesh.
type meshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns all OpenGL state: the shader programs, the per-mesh buffer
// cache, and the point light buffer. Meshes are uploaded lazily the first
// time a node referencing them is drawn; geometry never mutates after
// assembly, so buffers are uploaded once.
type Renderer struct {
	config Config

	meshProgram uint32
	meshes      map[*geometry.Mesh]*meshBuffer

	lights   *lighting.PointLightBuffer
	keyDir   [3]float32
	keyColor [3]float32
	ambient  [3]float32

	uniforms meshUniforms

	// Draw lists rebuilt each frame; blended nodes draw after opaque ones.
	opaque  []*scene.Node
	blended []*scene.Node
}

type meshUniforms struct {
	viewProj            int32
	model               int32
	baseColor           int32
	emissive            int32
	emissiveIntensity   int32
	opacity             int32
	keyLightDir         int32
	keyLightColor       int32
	ambient             int32
	pointLightCount     int32
	pointLightPos       int32
	pointLightColor     int32
	pointLightRange     int32
	pointLightIntensity int32
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	if cfg.FOV <= 0 {
		cfg.FOV = gomath.Pi / 4
	}
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[*geometry.Mesh]*meshBuffer),
		lights:   lighting.NewPointLightBuffer(),
		keyDir:   lighting.KeyLightDirection(40, 35),
		keyColor: [3]float32{0.9, 0.87, 0.8},
		ambient:  [3]float32{0.18, 0.2, 0.26},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.02, 0.03, 0.08, 1.0) // night sky

	var err error
	r.meshProgram, err = shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.uniforms = meshUniforms{
		viewProj:            shader.GetUniform(r.meshProgram, "uViewProj"),
		model:               shader.GetUniform(r.meshProgram, "uModel"),
		baseColor:           shader.GetUniform(r.meshProgram, "uBaseColor"),
		emissive:            shader.GetUniform(r.meshProgram, "uEmissive"),
		emissiveIntensity:   shader.GetUniform(r.meshProgram, "uEmissiveIntensity"),
		opacity:             shader.GetUniform(r.meshProgram, "uOpacity"),
		keyLightDir:         shader.GetUniform(r.meshProgram, "uKeyLightDir"),
		keyLightColor:       shader.GetUniform(r.meshProgram, "uKeyLightColor"),
		ambient:             shader.GetUniform(r.meshProgram, "uAmbient"),
		pointLightCount:     shader.GetUniform(r.meshProgram, "uPointLightCount"),
		pointLightPos:       shader.GetUniform(r.meshProgram, "uPointLightPos"),
		pointLightColor:     shader.GetUniform(r.meshProgram, "uPointLightColor"),
		pointLightRange:     shader.GetUniform(r.meshProgram, "uPointLightRange"),
		pointLightIntensity: shader.GetUniform(r.meshProgram, "uPointLightIntensity"),
	}

	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, buf := range r.meshes {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
	}
	if r.meshProgram != 0 {
		gl.DeleteProgram(r.meshProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ViewProj builds the combined projection-view matrix for the current
// window aspect ratio.
func (r *Renderer) ViewProj(view math.Mat4) math.Mat4 {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	proj := math.Perspective(r.config.FOV, aspect, 0.1, 200)
	return proj.Mul(view)
}

// Draw renders one frame of the scene: clears, uploads lights harvested
// from emissive nodes, then draws opaque nodes followed by blended ones.
func (r *Renderer) Draw(s *scene.Scene, view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := r.ViewProj(view)
	r.lights.SetLights(lighting.CollectEmissive(s, lighting.MaxPointLights))

	r.opaque = r.opaque[:0]
	r.blended = r.blended[:0]
	s.Root.Walk(func(n *scene.Node) {
		if n.Geometry == nil {
			return
		}
		if n.Material != nil && n.Material.Blend != scene.BlendOpaque {
			r.blended = append(r.blended, n)
			return
		}
		r.opaque = append(r.opaque, n)
	})

	gl.UseProgram(r.meshProgram)
	gl.UniformMatrix4fv(r.uniforms.viewProj, 1, false, viewProj.Ptr())
	gl.Uniform3fv(r.uniforms.keyLightDir, 1, &r.keyDir[0])
	gl.Uniform3fv(r.uniforms.keyLightColor, 1, &r.keyColor[0])
	gl.Uniform3fv(r.uniforms.ambient, 1, &r.ambient[0])
	gl.Uniform1i(r.uniforms.pointLightCount, int32(r.lights.Count))
	positions := r.lights.Positions()
	colors := r.lights.Colors()
	ranges := r.lights.Ranges()
	intensities := r.lights.Intensities()
	gl.Uniform3fv(r.uniforms.pointLightPos, lighting.MaxPointLights, &positions[0])
	gl.Uniform3fv(r.uniforms.pointLightColor, lighting.MaxPointLights, &colors[0])
	gl.Uniform1fv(r.uniforms.pointLightRange, lighting.MaxPointLights, &ranges[0])
	gl.Uniform1fv(r.uniforms.pointLightIntensity, lighting.MaxPointLights, &intensities[0])

	gl.Disable(gl.BLEND)
	for _, n := range r.opaque {
		r.drawNode(n)
	}

	if len(r.blended) > 0 {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		for _, n := range r.blended {
			if n.Material.Blend == scene.BlendAdditive {
				gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
			} else {
				gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			}
			r.drawNode(n)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawNode(n *scene.Node) {
	buf, err := r.buffer(n.Geometry)
	if err != nil {
		logger.Error("mesh upload failed", zap.String("node", n.Name), zap.Error(err))
		return
	}

	mat := n.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}

	gl.UniformMatrix4fv(r.uniforms.model, 1, false, n.World.Ptr())
	gl.Uniform3fv(r.uniforms.baseColor, 1, &mat.BaseColor[0])
	gl.Uniform3fv(r.uniforms.emissive, 1, &mat.Emissive[0])
	gl.Uniform1f(r.uniforms.emissiveIntensity, mat.EmissiveIntensity)
	gl.Uniform1f(r.uniforms.opacity, mat.Opacity)

	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
}

// buffer returns the GPU buffers for a mesh, uploading them on first use.
func (r *Renderer) buffer(mesh *geometry.Mesh) (*meshBuffer, error) {
	if buf, ok := r.meshes[mesh]; ok {
		return buf, nil
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("empty mesh")
	}

	buf := &meshBuffer{indexCount: int32(len(mesh.Indices))}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	stride := int32(unsafe.Sizeof(geometry.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		unsafe.Pointer(&mesh.Vertices[0]),
		gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		unsafe.Pointer(&mesh.Indices[0]),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[mesh] = buf
	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return buf, nil
}
