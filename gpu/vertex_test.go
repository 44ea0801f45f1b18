// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexArray(t *testing.T) {
	dev := NewMemDevice()
	va, err := NewVertexArray(dev)
	require.NoError(t, err)
	assert.Equal(t, va.Handle(), dev.Current())

	verts := []math32.Vector3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	vb, err := NewVertexBuffer(dev, Slice[math32.Vector3](verts), StaticDraw)
	require.NoError(t, err)
	assert.Equal(t, 36, vb.Size())
	vb.SetAttrib(VertexAttrib{Location: 0, Components: 3, Stride: 12})

	ib, err := NewIndexBuffer(dev, []uint32{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, ib.Len())

	rec := dev.VertexArray(va.Handle())
	require.NotNil(t, rec)
	assert.Equal(t, vb.Handle(), rec.Attribs[0].Buffer)
	assert.Equal(t, 3, rec.Attribs[0].Components)
	assert.Equal(t, ib.Handle(), rec.Index)

	va.Draw(Triangles, ib.Len(), true)
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, DrawCall{VertexArray: va.Handle(), Mode: Triangles, Count: 3, Indexed: true}, dev.Draws[0])

	verts[2] = math32.Vec3(2, 2, 0)
	require.NoError(t, vb.Transfer(Slice[math32.Vector3](verts)))
	var got [3]math32.Vector3
	require.NoError(t, Of(&got).SetBytes(dev.Mem(vb.Handle())))
	assert.Equal(t, math32.Vec3(2, 2, 0), got[2])

	assert.ErrorIs(t, vb.Transfer(Slice[math32.Vector3](verts[:2])), ErrLayout)
	wps := make([]withPointer, 36/Sizeof[withPointer]()+1)
	assert.ErrorIs(t, vb.Transfer(Slice[withPointer](wps)), ErrLayout)
	pvb, err := NewVertexBuffer(dev, Raw(make([]byte, Sizeof[withPointer]())), StaticDraw)
	require.NoError(t, err)
	x := uint32(1)
	assert.ErrorIs(t, pvb.Transfer(Of(&withPointer{P: &x})), ErrLayout)
	pvb.Release()

	ib.Release()
	vb.Release()
	va.Release()
	va.Release()
	assert.Equal(t, 0, dev.Live())
	assert.ErrorIs(t, vb.Transfer(Slice[math32.Vector3](verts)), ErrReleased)

	// drawing a released vertex array is a no-op
	va.Draw(Triangles, 3, false)
	assert.Len(t, dev.Draws, 1)
}

func TestTypesStrings(t *testing.T) {
	assert.Equal(t, "DynamicDraw", DynamicDraw.String())
	assert.Equal(t, "ShaderStorageBuffer", ShaderStorageBuffer.String())
	assert.Equal(t, "TriangleStrip", TriangleStrip.String())
	assert.Equal(t, "ShaderStorage", ShaderStorageBarrier.String())
	assert.Equal(t, "Uniform|ShaderStorage", (UniformBarrier | ShaderStorageBarrier).String())
	assert.Equal(t, "All", AllBarriers.String())
	assert.True(t, ShaderStorageBuffer.Indexed())
	assert.False(t, ArrayBuffer.Indexed())
}
