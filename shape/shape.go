// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides simple 2D shapes drawn from vertex buffers,
// using the vertex attribute layout of the default pipeline shader.
package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu"
)

// Vertex is a vertex as stored in the vertex buffers of the shapes.
type Vertex struct {

	// Position is the position of the vertex.
	Position math32.Vector3

	// Color is the RGB color of the vertex.
	Color math32.Vector3

	// UV is the texture coordinate of the vertex.
	UV math32.Vector2
}

// White is the default vertex color.
var White = math32.Vec3(1, 1, 1)

// Layout has the attribute locations of the fields of [Vertex]
// in the vertex shader.
type Layout struct {
	Position, Color, UV uint32
}

// DefaultLayout is the layout of the default vertex shader.
var DefaultLayout = Layout{Position: 0, Color: 1, UV: 2}

// Attribs returns the vertex attributes for the layout.
func (ly Layout) Attribs() []gpu.VertexAttrib {
	stride := gpu.Sizeof[Vertex]()
	return []gpu.VertexAttrib{
		{Location: ly.Position, Components: 3, Stride: stride, Offset: 0},
		{Location: ly.Color, Components: 3, Stride: stride, Offset: 12},
		{Location: ly.UV, Components: 2, Stride: stride, Offset: 24},
	}
}

// Drawable is something that can be drawn.
type Drawable interface {
	Draw() error
}

// Shape2D is a drawable shape that can be transformed in 2D.
type Shape2D interface {
	Drawable

	// Translate moves the shape by the given amount.
	Translate(delta math32.Vector2) error

	// Rotate rotates the shape around its center by the given
	// angle in radians.
	Rotate(angle float32) error

	// Scale scales the shape around its center by the given factor.
	Scale(factor float32) error
}

// Uniforms sets the uniforms of a shader, which is satisfied
// by glgpu.PipelineShader.
type Uniforms interface {
	SetFloat(name string, v float32) error
	SetFloat2(name string, v math32.Vector2) error
}

// mesh has the device objects of a shape.
type mesh struct {
	array  *gpu.VertexArray
	verts  *gpu.VertexBuffer
	index  *gpu.IndexBuffer
	layout Layout
}

// newMesh creates the vertex array and buffers for the given vertices,
// with an index buffer if idxs is not empty.
func newMesh(dev gpu.Device, verts []Vertex, idxs []uint32, layout Layout, usage gpu.Usages) (*mesh, error) {
	va, err := gpu.NewVertexArray(dev)
	if err != nil {
		return nil, err
	}
	vb, err := gpu.NewVertexBuffer(dev, gpu.Slice[Vertex](verts), usage)
	if err != nil {
		va.Release()
		return nil, err
	}
	for _, at := range layout.Attribs() {
		vb.SetAttrib(at)
	}
	ms := &mesh{array: va, verts: vb, layout: layout}
	if len(idxs) > 0 {
		ms.index, err = gpu.NewIndexBuffer(dev, idxs)
		if err != nil {
			ms.release()
			return nil, err
		}
	}
	return ms, nil
}

// transfer copies the vertices to the vertex buffer.
func (ms *mesh) transfer(verts []Vertex) error {
	ms.array.Bind()
	return ms.verts.Transfer(gpu.Slice[Vertex](verts))
}

func (ms *mesh) draw(mode gpu.DrawModes, count int) {
	ms.array.Draw(mode, count, ms.index != nil)
}

func (ms *mesh) release() {
	if ms.index != nil {
		ms.index.Release()
	}
	ms.verts.Release()
	ms.array.Release()
}

// center returns the average of the positions of the vertices.
func center(verts []Vertex) math32.Vector2 {
	var c math32.Vector2
	if len(verts) == 0 {
		return c
	}
	for _, v := range verts {
		c.X += v.Position.X
		c.Y += v.Position.Y
	}
	return c.DivScalar(float32(len(verts)))
}
