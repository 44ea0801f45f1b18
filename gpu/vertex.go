// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// VertexBuffer manages a buffer of interleaved vertex data
// (GL_ARRAY_BUFFER). Attributes are described with SetAttrib
// while the owning [VertexArray] is bound.
type VertexBuffer struct {
	device Device
	handle uint32
	size   int
	usage  Usages
}

// NewVertexBuffer creates a new vertex buffer holding the bytes
// of the given vertices.
func NewVertexBuffer(dev Device, verts Value, usage Usages) (*VertexBuffer, error) {
	if err := CheckLayout(verts); err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.NewVertexBuffer: %w", err))
	}
	b := verts.Bytes()
	h, err := dev.CreateBuffer(ArrayBuffer, b, len(b), usage)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.NewVertexBuffer: could not allocate %d bytes: %w", len(b), err))
	}
	return &VertexBuffer{device: dev, handle: h, size: len(b), usage: usage}, nil
}

// Handle returns the driver handle, 0 after Release.
func (vb *VertexBuffer) Handle() uint32 { return vb.handle }

// Size returns the allocated size in bytes.
func (vb *VertexBuffer) Size() int { return vb.size }

// SetAttrib describes a float attribute within this buffer on the
// currently bound vertex array.
func (vb *VertexBuffer) SetAttrib(attr VertexAttrib) {
	vb.device.VertexAttrib(vb.handle, attr)
}

// Transfer copies the given vertices to the buffer, which must
// have the same byte size as the vertices it was created with.
func (vb *VertexBuffer) Transfer(verts Value) error {
	if vb.handle == 0 {
		return errors.Log(fmt.Errorf("gpu.VertexBuffer Transfer: %w", ErrReleased))
	}
	if err := CheckLayout(verts); err != nil {
		return errors.Log(fmt.Errorf("gpu.VertexBuffer Transfer: %w", err))
	}
	b := verts.Bytes()
	if len(b) != vb.size {
		return errors.Log(fmt.Errorf("gpu.VertexBuffer Transfer: %w: Size passed: %d != Size expected %d", ErrLayout, len(b), vb.size))
	}
	return errors.Log(vb.device.WriteBuffer(ArrayBuffer, vb.handle, 0, b))
}

// Release frees the device buffer, only the first time it is called.
func (vb *VertexBuffer) Release() {
	if vb.handle == 0 {
		return
	}
	vb.device.DeleteBuffer(vb.handle)
	vb.handle = 0
}

// IndexBuffer manages a buffer of uint32 vertex indexes
// for indexed drawing (GL_ELEMENT_ARRAY_BUFFER).
type IndexBuffer struct {
	device Device
	handle uint32
	ln     int
}

// NewIndexBuffer creates a new index buffer holding the given indexes,
// and records it in the currently bound vertex array.
func NewIndexBuffer(dev Device, idxs []uint32) (*IndexBuffer, error) {
	b := SliceBytes(idxs)
	h, err := dev.CreateBuffer(ElementArrayBuffer, b, len(b), StaticDraw)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.NewIndexBuffer: could not allocate %d indexes: %w", len(idxs), err))
	}
	dev.BindIndexBuffer(h)
	return &IndexBuffer{device: dev, handle: h, ln: len(idxs)}, nil
}

// Handle returns the driver handle, 0 after Release.
func (ib *IndexBuffer) Handle() uint32 { return ib.handle }

// Len returns the number of indexes in the buffer.
func (ib *IndexBuffer) Len() int { return ib.ln }

// Release frees the device buffer, only the first time it is called.
func (ib *IndexBuffer) Release() {
	if ib.handle == 0 {
		return
	}
	ib.device.DeleteBuffer(ib.handle)
	ib.handle = 0
}

// VertexArray is a vertex array object, which records the vertex
// attribute layout and the index buffer used for drawing.
type VertexArray struct {
	device Device
	handle uint32
}

// NewVertexArray creates a new vertex array, which is bound
// immediately so that buffers created next are recorded in it.
func NewVertexArray(dev Device) (*VertexArray, error) {
	h, err := dev.CreateVertexArray()
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.NewVertexArray: %w", err))
	}
	dev.BindVertexArray(h)
	return &VertexArray{device: dev, handle: h}, nil
}

// Handle returns the driver handle, 0 after Release.
func (va *VertexArray) Handle() uint32 { return va.handle }

// Bind makes this the current vertex array.
func (va *VertexArray) Bind() {
	va.device.BindVertexArray(va.handle)
}

// Draw binds the vertex array and draws count vertices in the given
// mode, through the index buffer if indexed is true.
func (va *VertexArray) Draw(mode DrawModes, count int, indexed bool) {
	if va.handle == 0 {
		return
	}
	va.device.BindVertexArray(va.handle)
	va.device.Draw(mode, count, indexed)
}

// Release frees the vertex array, only the first time it is called.
func (va *VertexArray) Release() {
	if va.handle == 0 {
		return
	}
	va.device.DeleteVertexArray(va.handle)
	va.handle = 0
}
