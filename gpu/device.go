// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Device is the driver interface used by all buffer and vertex array
// types in this package. Handles are opaque ids allocated by the driver;
// zero is never a valid handle.
//
// Implementations are not safe for concurrent use: all calls must be
// made from the thread that owns the graphics context.
type Device interface {
	// CreateBuffer allocates a new buffer of size bytes for the given
	// target. If data is non-nil it is copied in as the initial content
	// (len(data) must equal size), otherwise the content is unspecified.
	// An error is returned if the allocation fails.
	CreateBuffer(target Targets, data []byte, size int, usage Usages) (uint32, error)

	// BindBufferBase binds the buffer to the indexed binding point of
	// the given target, where shaders can access it.
	BindBufferBase(target Targets, binding int, handle uint32)

	// WriteBuffer copies data into the buffer starting at offset.
	WriteBuffer(target Targets, handle uint32, offset int, data []byte) error

	// ReadBuffer copies len(dest) bytes from the buffer starting at
	// offset into dest.
	ReadBuffer(target Targets, handle uint32, offset int, dest []byte) error

	// DeleteBuffer frees the buffer.
	DeleteBuffer(handle uint32)

	// CreateVertexArray allocates a new vertex array object.
	CreateVertexArray() (uint32, error)

	// BindVertexArray makes the vertex array current, so that
	// subsequent buffer and attribute calls are recorded in it.
	// Zero unbinds.
	BindVertexArray(handle uint32)

	// VertexAttrib describes a float attribute stored in the given
	// array buffer and enables it on the current vertex array.
	VertexAttrib(buffer uint32, attr VertexAttrib)

	// BindIndexBuffer records the element array buffer in the
	// current vertex array.
	BindIndexBuffer(buffer uint32)

	// Draw draws count vertices of the current vertex array,
	// using its index buffer if indexed is true.
	Draw(mode DrawModes, count int, indexed bool)

	// DeleteVertexArray frees the vertex array.
	DeleteVertexArray(handle uint32)
}

// VertexAttrib describes the layout of one float vertex attribute
// within an interleaved vertex buffer.
type VertexAttrib struct {
	// Location is the shader input location.
	Location uint32

	// Components is the number of float32 components: 1 to 4.
	Components int

	// Stride is the byte distance between consecutive vertices.
	Stride int

	// Offset is the byte offset of the attribute within a vertex.
	Offset int
}
