// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"unsafe"

	"cogentcore.org/glkit/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// how to code opengl to be vulkan-friendly
// https://developer.nvidia.com/opengl-vulkan
// in general, use drawelements instead of arrays (i.e., use indexing)

var glTargets = [gpu.TargetsN]uint32{
	gpu.ArrayBuffer:         gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer:  gl.ELEMENT_ARRAY_BUFFER,
	gpu.ShaderStorageBuffer: gl.SHADER_STORAGE_BUFFER,
	gpu.UniformBuffer:       gl.UNIFORM_BUFFER,
}

var glUsages = [gpu.UsagesN]uint32{
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.StaticRead:  gl.STATIC_READ,
	gpu.StaticCopy:  gl.STATIC_COPY,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.DynamicRead: gl.DYNAMIC_READ,
	gpu.DynamicCopy: gl.DYNAMIC_COPY,
	gpu.StreamDraw:  gl.STREAM_DRAW,
	gpu.StreamRead:  gl.STREAM_READ,
	gpu.StreamCopy:  gl.STREAM_COPY,
}

var glDrawModes = [gpu.DrawModesN]uint32{
	gpu.Points:        gl.POINTS,
	gpu.Lines:         gl.LINES,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.LineLoop:      gl.LINE_LOOP,
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.TriangleFan:   gl.TRIANGLE_FAN,
}

// Device is the OpenGL implementation of [gpu.Device],
// operating on the current context.
type Device struct{}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a new [Device]. [Init] must have been called.
func NewDevice() *Device {
	return &Device{}
}

// ptr returns a pointer to the first byte of b, or nil if b is empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}

// bind binds the buffer to its target. Element array buffers are
// left bound, as unbinding them would remove them from the current
// vertex array.
func bind(target gpu.Targets, handle uint32) (unbind func()) {
	t := glTargets[target]
	gl.BindBuffer(t, handle)
	if target == gpu.ElementArrayBuffer {
		return func() {}
	}
	return func() { gl.BindBuffer(t, 0) }
}

func (dv *Device) CreateBuffer(target gpu.Targets, data []byte, size int, usage gpu.Usages) (uint32, error) {
	if data != nil && len(data) != size {
		return 0, fmt.Errorf("glgpu.Device CreateBuffer: size %d != %d bytes of data", size, len(data))
	}
	Error("CreateBuffer") // clear stale flags
	var handle uint32
	gl.GenBuffers(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("glgpu.Device CreateBuffer: could not generate %s", target)
	}
	unbind := bind(target, handle)
	gl.BufferData(glTargets[target], size, ptr(data), glUsages[usage])
	unbind()
	if err := Error("CreateBuffer"); err != nil {
		gl.DeleteBuffers(1, &handle)
		return 0, fmt.Errorf("glgpu.Device CreateBuffer %s of %d bytes: %w", target, size, err)
	}
	return handle, nil
}

func (dv *Device) BindBufferBase(target gpu.Targets, binding int, handle uint32) {
	gl.BindBufferBase(glTargets[target], uint32(binding), handle)
}

func (dv *Device) WriteBuffer(target gpu.Targets, handle uint32, offset int, data []byte) error {
	unbind := bind(target, handle)
	gl.BufferSubData(glTargets[target], offset, len(data), ptr(data))
	unbind()
	return Error("WriteBuffer")
}

func (dv *Device) ReadBuffer(target gpu.Targets, handle uint32, offset int, dest []byte) error {
	unbind := bind(target, handle)
	gl.GetBufferSubData(glTargets[target], offset, len(dest), ptr(dest))
	unbind()
	return Error("ReadBuffer")
}

func (dv *Device) DeleteBuffer(handle uint32) {
	gl.DeleteBuffers(1, &handle)
}

func (dv *Device) CreateVertexArray() (uint32, error) {
	var handle uint32
	gl.GenVertexArrays(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("glgpu.Device CreateVertexArray: could not generate: %v", Error("GenVertexArrays"))
	}
	return handle, nil
}

func (dv *Device) BindVertexArray(handle uint32) {
	gl.BindVertexArray(handle)
}

func (dv *Device) VertexAttrib(buffer uint32, attr gpu.VertexAttrib) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(attr.Location, int32(attr.Components), gl.FLOAT, false, int32(attr.Stride), uintptr(attr.Offset))
	gl.EnableVertexAttribArray(attr.Location)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (dv *Device) BindIndexBuffer(buffer uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer)
}

func (dv *Device) Draw(mode gpu.DrawModes, count int, indexed bool) {
	if indexed {
		gl.DrawElements(glDrawModes[mode], int32(count), gl.UNSIGNED_INT, nil)
		return
	}
	gl.DrawArrays(glDrawModes[mode], 0, int32(count))
}

func (dv *Device) DeleteVertexArray(handle uint32) {
	gl.DeleteVertexArrays(1, &handle)
}
