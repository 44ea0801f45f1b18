// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"
)

// Usages are the expected access patterns of a buffer's data store.
// They only affect where the driver places the memory, never
// correctness. See glBufferData.
type Usages int32

const (
	// StaticDraw is set once, used many times as a source for drawing.
	StaticDraw Usages = iota
	StaticRead
	StaticCopy

	// DynamicDraw is modified repeatedly and used many times.
	DynamicDraw
	DynamicRead
	DynamicCopy

	// StreamDraw is set once and used at most a few times.
	StreamDraw
	StreamRead
	StreamCopy

	UsagesN
)

var usageNames = [...]string{"StaticDraw", "StaticRead", "StaticCopy", "DynamicDraw", "DynamicRead", "DynamicCopy", "StreamDraw", "StreamRead", "StreamCopy"}

func (u Usages) String() string {
	if u < 0 || u >= UsagesN {
		return fmt.Sprintf("Usages(%d)", int32(u))
	}
	return usageNames[u]
}

// Targets are the binding targets of device buffers.
type Targets int32

const (
	// ArrayBuffer holds vertex attributes.
	ArrayBuffer Targets = iota

	// ElementArrayBuffer holds vertex indexes.
	ElementArrayBuffer

	// ShaderStorageBuffer is readable and writable by shaders
	// at a binding index.
	ShaderStorageBuffer

	// UniformBuffer holds a block of uniforms at a binding index.
	UniformBuffer

	TargetsN
)

var targetNames = [...]string{"ArrayBuffer", "ElementArrayBuffer", "ShaderStorageBuffer", "UniformBuffer"}

func (t Targets) String() string {
	if t < 0 || t >= TargetsN {
		return fmt.Sprintf("Targets(%d)", int32(t))
	}
	return targetNames[t]
}

// Indexed returns whether buffers of this target are bound to
// an indexed binding point (see BindBufferBase).
func (t Targets) Indexed() bool {
	return t == ShaderStorageBuffer || t == UniformBuffer
}

// Barriers are bit flags specifying which memory accesses must
// see the writes done by a shader before it, as in glMemoryBarrier.
// The bit values are those of OpenGL.
type Barriers uint32

const (
	VertexAttribArrayBarrier Barriers = 0x00000001
	ElementArrayBarrier      Barriers = 0x00000002
	UniformBarrier           Barriers = 0x00000004
	TextureFetchBarrier      Barriers = 0x00000008
	ShaderImageAccessBarrier Barriers = 0x00000020
	CommandBarrier           Barriers = 0x00000040
	PixelBufferBarrier       Barriers = 0x00000080
	TextureUpdateBarrier     Barriers = 0x00000100
	BufferUpdateBarrier      Barriers = 0x00000200
	FramebufferBarrier       Barriers = 0x00000400
	TransformFeedbackBarrier Barriers = 0x00000800
	AtomicCounterBarrier     Barriers = 0x00001000
	ShaderStorageBarrier     Barriers = 0x00002000
	AllBarriers              Barriers = 0xFFFFFFFF
	NoBarrier                Barriers = 0
)

var barrierNames = []struct {
	b    Barriers
	name string
}{
	{VertexAttribArrayBarrier, "VertexAttribArray"},
	{ElementArrayBarrier, "ElementArray"},
	{UniformBarrier, "Uniform"},
	{TextureFetchBarrier, "TextureFetch"},
	{ShaderImageAccessBarrier, "ShaderImageAccess"},
	{CommandBarrier, "Command"},
	{PixelBufferBarrier, "PixelBuffer"},
	{TextureUpdateBarrier, "TextureUpdate"},
	{BufferUpdateBarrier, "BufferUpdate"},
	{FramebufferBarrier, "Framebuffer"},
	{TransformFeedbackBarrier, "TransformFeedback"},
	{AtomicCounterBarrier, "AtomicCounter"},
	{ShaderStorageBarrier, "ShaderStorage"},
}

// Has returns whether all the bits in f are set.
func (b Barriers) Has(f Barriers) bool {
	return b&f == f
}

func (b Barriers) String() string {
	switch b {
	case NoBarrier:
		return "None"
	case AllBarriers:
		return "All"
	}
	var s []string
	for _, bn := range barrierNames {
		if b.Has(bn.b) {
			s = append(s, bn.name)
		}
	}
	return strings.Join(s, "|")
}

// DrawModes are the primitive types for drawing vertices.
type DrawModes int32

const (
	Points DrawModes = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan

	DrawModesN
)

var drawModeNames = [...]string{"Points", "Lines", "LineStrip", "LineLoop", "Triangles", "TriangleStrip", "TriangleFan"}

func (m DrawModes) String() string {
	if m < 0 || m >= DrawModesN {
		return fmt.Sprintf("DrawModes(%d)", int32(m))
	}
	return drawModeNames[m]
}
