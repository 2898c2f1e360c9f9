// Package renderer draws the museum mesh with OpenGL.
package renderer

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/museum-walk/internal/engine/mesh"
	"github.com/Faultbox/museum-walk/internal/engine/shader"
	"github.com/Faultbox/museum-walk/internal/logger"
)

//go:embed shaders/scene.vert
var sceneVertSrc string

//go:embed shaders/scene.frag
var sceneFragSrc string

const (
	uniformModel = "uModel"
	uniformView  = "uView"
	uniformProj  = "uProj"
	uniformColor = "uColor"
	uniformFade  = "uFadeDistance"
)

// Config holds renderer configuration.
type Config struct {
	Color        mgl32.Vec4
	Background   mgl32.Vec3
	Model        mgl32.Mat4
	FadeDistance float32 // usually the far plane
}

// Renderer owns the GPU copy of the scene mesh.
type Renderer struct {
	config  Config
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32
}

// New uploads buf and compiles the scene program.
// Must be called after the OpenGL context is created.
func New(cfg Config, buf *mesh.Buffer) (*Renderer, error) {
	r := &Renderer{config: cfg}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.Link(sceneVertSrc, sceneFragSrc,
		uniformModel, uniformView, uniformProj, uniformColor, uniformFade)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	if err := r.upload(buf); err != nil {
		r.Close()
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	return r, nil
}

func (r *Renderer) upload(buf *mesh.Buffer) error {
	if len(buf.Indices) == 0 {
		return fmt.Errorf("mesh has no triangles")
	}
	positions := buf.Positions()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4, gl.Ptr(buf.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	// The element buffer binding stays with the VAO.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = int32(len(buf.Indices))

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int("vertices", len(buf.Vertices)),
		zap.Int("triangles", buf.Triangles()),
	)
	return nil
}

// Draw renders the scene into the currently bound framebuffer.
func (r *Renderer) Draw(view, proj mgl32.Mat4) {
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform(uniformModel), 1, false, &r.config.Model[0])
	gl.UniformMatrix4fv(r.program.Uniform(uniformView), 1, false, &view[0])
	gl.UniformMatrix4fv(r.program.Uniform(uniformProj), 1, false, &proj[0])
	c := r.config.Color
	gl.Uniform4f(r.program.Uniform(uniformColor), c[0], c[1], c[2], c[3])
	gl.Uniform1f(r.program.Uniform(uniformFade), r.config.FadeDistance)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// ModelMatrix composes the scene placement: translate, then rotate about Y,
// then scale uniformly.
func ModelMatrix(translate mgl32.Vec3, rotateYDegrees, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(translate[0], translate[1], translate[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotateYDegrees))).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
