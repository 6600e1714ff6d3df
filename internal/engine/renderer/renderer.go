// Package renderer draws the cube mesh with OpenGL.
//
// All methods must run on the thread owning the GL context.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-tweaks/internal/cube"
	"github.com/Faultbox/cube-tweaks/internal/engine/renderer/shaders"
	"github.com/Faultbox/cube-tweaks/internal/engine/shader"
	"github.com/Faultbox/cube-tweaks/internal/geometry"
	"github.com/Faultbox/cube-tweaks/internal/logger"
	"github.com/Faultbox/cube-tweaks/pkg/math"
)

// Renderer owns the cube shader and tracks the meshes it uploaded.
type Renderer struct {
	program *shader.Program
	log     *zap.Logger
	live    int
}

// New compiles the cube program. The GL context must already be current
// and gl.Init must have run.
func New() (*Renderer, error) {
	log := logger.Named("renderer")

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.New(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}

	return &Renderer{program: program, log: log}, nil
}

// Mesh is a box uploaded to the GPU: one VAO, an interleaved vertex buffer
// and separate index buffers for triangles and wireframe lines.
type Mesh struct {
	owner *Renderer

	vao     uint32
	vbo     uint32
	triEBO  uint32
	lineEBO uint32

	triIndices  int32
	lineIndices int32
}

// Upload copies box into new GPU buffers.
func (r *Renderer) Upload(box *geometry.Box) cube.Buffers {
	m := &Mesh{
		owner:       r,
		triIndices:  int32(len(box.Indices)),
		lineIndices: int32(len(box.LineIndices)),
	}

	vertices := box.Interleaved()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	m.triEBO = elementBuffer(box.Indices)
	m.lineEBO = elementBuffer(box.LineIndices)

	r.live++
	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", box.VertexCount()),
		zap.Int32("triangle_indices", m.triIndices),
		zap.Int32("line_indices", m.lineIndices),
		zap.Int("live", r.live),
	)
	return m
}

func elementBuffer(indices []uint32) uint32 {
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(indices), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return ebo
}

// Release deletes the GPU buffers. Further calls are no-ops.
func (m *Mesh) Release() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	buffers := []uint32{m.vbo, m.triEBO, m.lineEBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	m.vao, m.vbo, m.triEBO, m.lineEBO = 0, 0, 0, 0

	m.owner.live--
	m.owner.log.Debug("mesh released", zap.Int("live", m.owner.live))
}

// UploadTexture creates a mipmapped RGBA texture from img.
func (r *Renderer) UploadTexture(img *image.RGBA) uint32 {
	b := img.Bounds()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.log.Debug("texture uploaded", zap.Uint32("id", id), zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	return id
}

// DeleteTexture frees a texture created by UploadTexture.
func (r *Renderer) DeleteTexture(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}

// Draw renders one mesh with the given material and model-view-projection.
func (r *Renderer) Draw(buffers cube.Buffers, mat cube.Material, mvp math.Mat4) {
	m, ok := buffers.(*Mesh)
	if !ok || m.vao == 0 {
		return
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r.program.Use()
	r.program.SetMat4("uMVP", mvp.Ptr())
	r.program.SetVec3("uTint", mat.Tint())

	textured := mat.Mode == cube.MaterialTextured && mat.Texture != 0
	r.program.SetBool("uTextured", textured)
	if textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mat.Texture)
		r.program.SetInt("uTexture", 0)
	}

	gl.BindVertexArray(m.vao)
	if mat.Wireframe {
		gl.Disable(gl.CULL_FACE)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.lineEBO)
		gl.DrawElementsWithOffset(gl.LINES, m.lineIndices, gl.UNSIGNED_INT, 0)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.triEBO)
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.triIndices, gl.UNSIGNED_INT, 0)
	}
	gl.BindVertexArray(0)

	if textured {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
}

// Close frees the shader program.
func (r *Renderer) Close() {
	r.program.Delete()
	if r.live != 0 {
		r.log.Warn("renderer closed with live meshes", zap.Int("live", r.live))
	}
}
