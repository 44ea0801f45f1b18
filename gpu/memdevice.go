// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// MemDevice is a [Device] that keeps all buffers in host memory.
// It is used for offscreen processing without a graphics context
// and for testing. Device-side contents can be accessed directly
// with [MemDevice.Mem], which plays the role of a shader writing
// to the buffer. Draw calls are recorded in Draws.
type MemDevice struct {
	// Limit is the maximum total number of bytes that can be allocated
	// across all live buffers. Zero means no limit.
	Limit int

	// Draws records all Draw calls in order.
	Draws []DrawCall

	buffers  map[uint32]*memBuffer
	arrays   map[uint32]*MemVertexArray
	bindings map[Targets]map[int]uint32
	frees    map[uint32]int
	current  uint32
	next     uint32
	alloc    int
}

var _ Device = (*MemDevice)(nil)

// DrawCall is a recorded [MemDevice.Draw] call.
type DrawCall struct {
	VertexArray uint32
	Mode        DrawModes
	Count       int
	Indexed     bool
}

// MemVertexArray is the state recorded in a vertex array
// by a [MemDevice].
type MemVertexArray struct {
	// Attribs are the enabled attributes by location,
	// with the buffer they read from.
	Attribs map[uint32]MemAttrib

	// Index is the element array buffer, 0 if none.
	Index uint32
}

// MemAttrib is an attribute recorded by a [MemDevice].
type MemAttrib struct {
	VertexAttrib
	Buffer uint32
}

type memBuffer struct {
	target Targets
	usage  Usages
	data   []byte
}

// NewMemDevice returns a new [MemDevice].
func NewMemDevice() *MemDevice {
	return &MemDevice{
		buffers:  make(map[uint32]*memBuffer),
		arrays:   make(map[uint32]*MemVertexArray),
		bindings: make(map[Targets]map[int]uint32),
		frees:    make(map[uint32]int),
	}
}

func (md *MemDevice) newHandle() uint32 {
	md.next++
	return md.next
}

func (md *MemDevice) buffer(handle uint32) (*memBuffer, error) {
	mb, ok := md.buffers[handle]
	if !ok {
		return nil, fmt.Errorf("gpu.MemDevice: buffer %d does not exist", handle)
	}
	return mb, nil
}

func (md *MemDevice) CreateBuffer(target Targets, data []byte, size int, usage Usages) (uint32, error) {
	if size < 0 || (data != nil && len(data) != size) {
		return 0, fmt.Errorf("gpu.MemDevice CreateBuffer: invalid size %d for %d bytes of data", size, len(data))
	}
	if md.Limit > 0 && md.alloc+size > md.Limit {
		return 0, fmt.Errorf("gpu.MemDevice CreateBuffer: out of memory: %d + %d > limit %d", md.alloc, size, md.Limit)
	}
	mb := &memBuffer{target: target, usage: usage, data: make([]byte, size)}
	copy(mb.data, data)
	h := md.newHandle()
	md.buffers[h] = mb
	md.alloc += size
	return h, nil
}

func (md *MemDevice) BindBufferBase(target Targets, binding int, handle uint32) {
	bm := md.bindings[target]
	if bm == nil {
		bm = make(map[int]uint32)
		md.bindings[target] = bm
	}
	bm[binding] = handle
}

func (md *MemDevice) WriteBuffer(target Targets, handle uint32, offset int, data []byte) error {
	mb, err := md.buffer(handle)
	if err != nil {
		return err
	}
	if !inRange(offset, len(data), len(mb.data)) {
		return fmt.Errorf("gpu.MemDevice WriteBuffer %d: offset %d + length %d > size %d", handle, offset, len(data), len(mb.data))
	}
	copy(mb.data[offset:], data)
	return nil
}

func (md *MemDevice) ReadBuffer(target Targets, handle uint32, offset int, dest []byte) error {
	mb, err := md.buffer(handle)
	if err != nil {
		return err
	}
	if !inRange(offset, len(dest), len(mb.data)) {
		return fmt.Errorf("gpu.MemDevice ReadBuffer %d: offset %d + length %d > size %d", handle, offset, len(dest), len(mb.data))
	}
	copy(dest, mb.data[offset:])
	return nil
}

func (md *MemDevice) DeleteBuffer(handle uint32) {
	md.frees[handle]++
	mb, ok := md.buffers[handle]
	if !ok {
		slog.Error("gpu.MemDevice DeleteBuffer: buffer does not exist", "handle", handle)
		return
	}
	md.alloc -= len(mb.data)
	delete(md.buffers, handle)
	for _, bm := range md.bindings {
		for b, h := range bm {
			if h == handle {
				delete(bm, b)
			}
		}
	}
}

func (md *MemDevice) CreateVertexArray() (uint32, error) {
	h := md.newHandle()
	md.arrays[h] = &MemVertexArray{Attribs: make(map[uint32]MemAttrib)}
	return h, nil
}

func (md *MemDevice) BindVertexArray(handle uint32) {
	md.current = handle
}

func (md *MemDevice) VertexAttrib(buffer uint32, attr VertexAttrib) {
	va, ok := md.arrays[md.current]
	if !ok {
		slog.Error("gpu.MemDevice VertexAttrib: no vertex array bound", "location", attr.Location)
		return
	}
	va.Attribs[attr.Location] = MemAttrib{VertexAttrib: attr, Buffer: buffer}
}

func (md *MemDevice) BindIndexBuffer(buffer uint32) {
	va, ok := md.arrays[md.current]
	if !ok {
		slog.Error("gpu.MemDevice BindIndexBuffer: no vertex array bound", "buffer", buffer)
		return
	}
	va.Index = buffer
}

func (md *MemDevice) Draw(mode DrawModes, count int, indexed bool) {
	md.Draws = append(md.Draws, DrawCall{VertexArray: md.current, Mode: mode, Count: count, Indexed: indexed})
}

func (md *MemDevice) DeleteVertexArray(handle uint32) {
	md.frees[handle]++
	if md.current == handle {
		md.current = 0
	}
	delete(md.arrays, handle)
}

//////// Inspection

// Mem returns the device-side memory of the given buffer, or nil if
// it does not exist. Writing to it changes the buffer contents.
func (md *MemDevice) Mem(handle uint32) []byte {
	mb, ok := md.buffers[handle]
	if !ok {
		return nil
	}
	return mb.data
}

// Usage returns the usage hint the buffer was created with.
func (md *MemDevice) Usage(handle uint32) Usages {
	if mb, ok := md.buffers[handle]; ok {
		return mb.usage
	}
	return 0
}

// Bound returns the buffer bound to the given target and binding
// index, 0 if none.
func (md *MemDevice) Bound(target Targets, binding int) uint32 {
	return md.bindings[target][binding]
}

// VertexArray returns the recorded state of the given vertex array.
func (md *MemDevice) VertexArray(handle uint32) *MemVertexArray {
	return md.arrays[handle]
}

// Current returns the currently bound vertex array.
func (md *MemDevice) Current() uint32 {
	return md.current
}

// Live returns the number of buffers that have not been deleted.
func (md *MemDevice) Live() int {
	return len(md.buffers)
}

// Allocated returns the total number of bytes in live buffers.
func (md *MemDevice) Allocated() int {
	return md.alloc
}

// Frees returns the number of times the given handle has been deleted.
func (md *MemDevice) Frees(handle uint32) int {
	return md.frees[handle]
}
