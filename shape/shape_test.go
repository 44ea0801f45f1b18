// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"reflect"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

// deviceVertices returns the vertices in the given device buffer.
func deviceVertices(t *testing.T, dev *gpu.MemDevice, handle uint32) []Vertex {
	mem := dev.Mem(handle)
	verts := make([]Vertex, len(mem)/gpu.Sizeof[Vertex]())
	require.NoError(t, gpu.Slice[Vertex](verts).SetBytes(mem))
	return verts
}

func assertPos(t *testing.T, x, y float32, v Vertex) {
	t.Helper()
	assert.InDelta(t, x, v.Position.X, tol)
	assert.InDelta(t, y, v.Position.Y, tol)
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, 32, gpu.Sizeof[Vertex]())
	assert.NoError(t, gpu.CheckPlain(reflect.TypeFor[Vertex]()))

	ats := DefaultLayout.Attribs()
	require.Len(t, ats, 3)
	assert.Equal(t, gpu.VertexAttrib{Location: 0, Components: 3, Stride: 32, Offset: 0}, ats[0])
	assert.Equal(t, gpu.VertexAttrib{Location: 1, Components: 3, Stride: 32, Offset: 12}, ats[1])
	assert.Equal(t, gpu.VertexAttrib{Location: 2, Components: 2, Stride: 32, Offset: 24}, ats[2])
}

func TestRectangle(t *testing.T) {
	dev := gpu.NewMemDevice()
	rc, err := NewRectangle(dev, math32.Vec2(0.5, 0.5), math32.Vec2(1, 2))
	require.NoError(t, err)

	va := dev.VertexArray(rc.mesh.array.Handle())
	require.NotNil(t, va)
	assert.Len(t, va.Attribs, 3)
	assert.Equal(t, rc.mesh.verts.Handle(), va.Attribs[1].Buffer)
	assert.Equal(t, rc.mesh.index.Handle(), va.Index)
	assert.Equal(t, RectangleIndexes, gpuIndexes(t, dev, va.Index))

	verts := deviceVertices(t, dev, rc.mesh.verts.Handle())
	require.Len(t, verts, 4)
	assertPos(t, 0, -0.5, verts[0])
	assertPos(t, 1, -0.5, verts[1])
	assertPos(t, 1, 1.5, verts[2])
	assertPos(t, 0, 1.5, verts[3])
	for _, v := range verts {
		assert.Equal(t, White, v.Color)
	}

	require.NoError(t, rc.Draw())
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, gpu.DrawCall{VertexArray: va2h(rc), Mode: gpu.Triangles, Count: 6, Indexed: true}, dev.Draws[0])

	require.NoError(t, rc.Translate(math32.Vec2(1, 1)))
	assert.Equal(t, math32.Vec2(1.5, 1.5), rc.Center())
	verts = deviceVertices(t, dev, rc.mesh.verts.Handle())
	assertPos(t, 1, 0.5, verts[0])
	assertPos(t, 1, 2.5, verts[3])

	require.NoError(t, rc.Rotate(math32.Pi/2))
	verts = deviceVertices(t, dev, rc.mesh.verts.Handle())
	// (-0.5, -1) from the center rotates to (1, -0.5)
	assertPos(t, 2.5, 1, verts[0])

	require.NoError(t, rc.Scale(2))
	verts = deviceVertices(t, dev, rc.mesh.verts.Handle())
	assertPos(t, 3.5, 0.5, verts[0])
	assert.Equal(t, math32.Vec2(1.5, 1.5), rc.Center())

	rc.Release()
	assert.Equal(t, 0, dev.Live())
}

func va2h(rc *Rectangle) uint32 { return rc.mesh.array.Handle() }

func gpuIndexes(t *testing.T, dev *gpu.MemDevice, handle uint32) []uint32 {
	mem := dev.Mem(handle)
	idxs := make([]uint32, len(mem)/4)
	require.NoError(t, gpu.Slice[uint32](idxs).SetBytes(mem))
	return idxs
}

func TestRectangleColors(t *testing.T) {
	dev := gpu.NewMemDevice()
	red := math32.Vec3(1, 0, 0)
	rc, err := NewRectangle(dev, math32.Vec2(0, 0), math32.Vec2(1, 1), red)
	require.NoError(t, err)
	for _, v := range rc.Vertices() {
		assert.Equal(t, red, v.Color)
	}

	clrs := []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0)}
	rc, err = NewRectangle(dev, math32.Vec2(0, 0), math32.Vec2(1, 1), clrs...)
	require.NoError(t, err)
	for i, v := range rc.Vertices() {
		assert.Equal(t, clrs[i], v.Color)
	}

	rc, err = NewRectangle(dev, math32.Vec2(0, 0), math32.Vec2(1, 1), clrs[:2]...)
	require.NoError(t, err)
	for _, v := range rc.Vertices() {
		assert.Equal(t, White, v.Color)
	}
}

type uniforms map[string]any

func (u uniforms) SetFloat(name string, v float32) error {
	u[name] = v
	return nil
}

func (u uniforms) SetFloat2(name string, v math32.Vector2) error {
	u[name] = v
	return nil
}

func TestRect(t *testing.T) {
	dev := gpu.NewMemDevice()
	u := uniforms{}
	verts := []Vertex{
		{Position: math32.Vec3(0, 2, 0)},
		{Position: math32.Vec3(2, 2, 0)},
		{Position: math32.Vec3(2, 0, 0)},
		{Position: math32.Vec3(0, 0, 0)},
	}
	rc, err := NewRect(dev, u, verts)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(1, 1), rc.Center())

	dverts := deviceVertices(t, dev, rc.mesh.verts.Handle())
	assertPos(t, -1, 1, dverts[0])
	assertPos(t, 1, -1, dverts[2])

	require.NoError(t, rc.Translate(math32.Vec2(1, 0)))
	require.NoError(t, rc.Rotate(0.5))
	require.NoError(t, rc.Rotate(0.25))
	require.NoError(t, rc.Scale(2))
	require.NoError(t, rc.Scale(1.5))
	require.NoError(t, rc.Draw())

	assert.Equal(t, math32.Vec2(2, 1), u["center"])
	assert.Equal(t, float32(0.75), u["angle"])
	assert.Equal(t, float32(3), u["scale"])
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, gpu.TriangleStrip, dev.Draws[0].Mode)
	assert.Equal(t, 4, dev.Draws[0].Count)
	assert.True(t, dev.Draws[0].Indexed)

	// device vertices are unchanged by transforms
	assert.Equal(t, dverts, deviceVertices(t, dev, rc.mesh.verts.Handle()))

	_, err = NewRect(dev, u, verts[:3])
	assert.Error(t, err)
}

func TestRectangleResetsUniforms(t *testing.T) {
	dev := gpu.NewMemDevice()
	u := uniforms{}
	rt, err := NewRect(dev, u, []Vertex{
		{Position: math32.Vec3(0, 1, 0)},
		{Position: math32.Vec3(1, 1, 0)},
		{Position: math32.Vec3(1, 0, 0)},
		{Position: math32.Vec3(0, 0, 0)},
	})
	require.NoError(t, err)
	rc, err := NewRectangle(dev, math32.Vec2(0, 0), math32.Vec2(1, 1))
	require.NoError(t, err)

	require.NoError(t, rt.Rotate(1))
	require.NoError(t, rt.Scale(2))
	require.NoError(t, rt.Draw())
	assert.Equal(t, float32(1), u["angle"])

	// without uniforms the rectangle leaves them as they are
	require.NoError(t, rc.Draw())
	assert.Equal(t, float32(2), u["scale"])

	rc.Uniforms = u
	require.NoError(t, rc.Draw())
	assert.Equal(t, math32.Vector2{}, u["center"])
	assert.Equal(t, float32(0), u["angle"])
	assert.Equal(t, float32(1), u["scale"])
	assert.Len(t, dev.Draws, 3)
}

func TestCustom(t *testing.T) {
	dev := gpu.NewMemDevice()
	verts := []Vertex{
		{Position: math32.Vec3(0, 0, 0)},
		{Position: math32.Vec3(1, 0, 0)},
		{Position: math32.Vec3(0, 1, 0)},
	}
	cs, err := NewCustom(dev, verts, gpu.LineLoop, &Layout{Position: 3, Color: 4, UV: 5})
	require.NoError(t, err)
	va := dev.VertexArray(cs.mesh.array.Handle())
	assert.Contains(t, va.Attribs, uint32(3))
	assert.Contains(t, va.Attribs, uint32(5))
	assert.Zero(t, va.Index)

	require.NoError(t, cs.Draw())
	assert.Equal(t, gpu.DrawCall{VertexArray: cs.mesh.array.Handle(), Mode: gpu.LineLoop, Count: 3}, dev.Draws[0])

	cs.Release()
	cs.Release()
	assert.Equal(t, 0, dev.Live())

	_, err = NewCustom(dev, nil, gpu.Points, nil)
	assert.Error(t, err)
}

func TestShapeErrors(t *testing.T) {
	dev := gpu.NewMemDevice()
	dev.Limit = 64
	_, err := NewRectangle(dev, math32.Vec2(0, 0), math32.Vec2(1, 1))
	assert.Error(t, err)
	assert.Equal(t, 0, dev.Live())
}
