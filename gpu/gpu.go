// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the host side of GPU buffer management:
// byte views of plain Go values ([Value]), device buffers that
// own a driver allocation ([StorageBuffer], [VertexBuffer],
// [IndexBuffer]), vertex arrays, and shader sources.
//
// All driver calls go through the [Device] interface, which is
// implemented for OpenGL by the glgpu package, and in host memory
// by [MemDevice] for offscreen use and testing.
//
// Everything here is synchronous and must be called from the single
// thread that owns the graphics context.
package gpu

import "cogentcore.org/core/base/errors"

// Debug is whether to print debugging information.
var Debug = false

var (
	// ErrLayout is returned when a host value does not have a plain,
	// fixed memory layout, or when the number of bytes transferred
	// does not match the size of the value.
	ErrLayout = errors.New("gpu: memory layout mismatch")

	// ErrOutOfRange is returned when offset + length of a transfer
	// exceeds the allocated size of the device buffer.
	ErrOutOfRange = errors.New("gpu: transfer out of buffer range")

	// ErrReleased is returned when using a buffer after Release.
	ErrReleased = errors.New("gpu: buffer has been released")
)
