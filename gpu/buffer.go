// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
)

// StorageBuffer is a shader storage buffer object (SSBO): a device
// buffer of fixed size bound at a binding index, readable and writable
// by shaders. It exclusively owns its driver allocation, which is freed
// exactly once by Release. It is not safe for concurrent use.
type StorageBuffer struct {
	device  Device
	handle  uint32
	binding int
	size    int
	usage   Usages
}

// NewStorageBuffer creates a new storage buffer at the given binding
// index, sized to the bytes of the given value, which are copied into
// it as the initial content. If the value is a [LayoutChecker], its
// layout is checked first. An error is returned if the driver cannot
// allocate the buffer.
func NewStorageBuffer(dev Device, binding int, v Value, usage Usages) (*StorageBuffer, error) {
	if err := CheckLayout(v); err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.NewStorageBuffer binding %d: %w", binding, err))
	}
	b := v.Bytes()
	if len(b) == 0 {
		return nil, errors.Log(fmt.Errorf("gpu.NewStorageBuffer binding %d: %w: value has no bytes", binding, ErrLayout))
	}
	return newStorageBuffer(dev, binding, b, len(b), usage)
}

// NewEmptyStorageBuffer creates a new storage buffer of the given size
// in bytes at the given binding index, with unspecified content.
func NewEmptyStorageBuffer(dev Device, binding int, size int, usage Usages) (*StorageBuffer, error) {
	if size <= 0 {
		return nil, errors.Log(fmt.Errorf("gpu.NewEmptyStorageBuffer binding %d: invalid size %d", binding, size))
	}
	return newStorageBuffer(dev, binding, nil, size, usage)
}

func newStorageBuffer(dev Device, binding int, data []byte, size int, usage Usages) (*StorageBuffer, error) {
	h, err := dev.CreateBuffer(ShaderStorageBuffer, data, size, usage)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.StorageBuffer binding %d: could not allocate %d bytes: %w", binding, size, err))
	}
	dev.BindBufferBase(ShaderStorageBuffer, binding, h)
	if Debug {
		slog.Info("gpu.StorageBuffer created", "handle", h, "binding", binding, "size", size, "usage", usage)
	}
	return &StorageBuffer{device: dev, handle: h, binding: binding, size: size, usage: usage}, nil
}

// Handle returns the driver handle, 0 after Release.
func (sb *StorageBuffer) Handle() uint32 { return sb.handle }

// Binding returns the binding index of the buffer.
func (sb *StorageBuffer) Binding() int { return sb.binding }

// Size returns the allocated size in bytes.
func (sb *StorageBuffer) Size() int { return sb.size }

// Usage returns the usage hint the buffer was created with.
func (sb *StorageBuffer) Usage() Usages { return sb.usage }

// Released returns whether Release has been called.
func (sb *StorageBuffer) Released() bool { return sb.handle == 0 }

// checkRange returns an error if the buffer is released or
// the range is not within the buffer.
func (sb *StorageBuffer) checkRange(op string, offset, n int) error {
	if sb.handle == 0 {
		return fmt.Errorf("gpu.StorageBuffer %s binding %d: %w", op, sb.binding, ErrReleased)
	}
	if !inRange(offset, n, sb.size) {
		return fmt.Errorf("gpu.StorageBuffer %s binding %d: %w: offset %d + length %d > size %d", op, sb.binding, ErrOutOfRange, offset, n, sb.size)
	}
	return nil
}

// inRange returns whether n bytes at offset fit within size bytes,
// without overflowing for large offsets.
func inRange(offset, n, size int) bool {
	return offset >= 0 && n >= 0 && n <= size && offset <= size-n
}

// Upload copies the bytes of the given value into the buffer at the
// given byte offset. The value itself is not modified.
func (sb *StorageBuffer) Upload(v Value, offset int) error {
	if err := CheckLayout(v); err != nil {
		return errors.Log(fmt.Errorf("gpu.StorageBuffer Upload binding %d: %w", sb.binding, err))
	}
	b := v.Bytes()
	if err := sb.checkRange("Upload", offset, len(b)); err != nil {
		return errors.Log(err)
	}
	if len(b) == 0 {
		return nil
	}
	return errors.Log(sb.device.WriteBuffer(ShaderStorageBuffer, sb.handle, offset, b))
}

// Download copies bytes from the buffer at the given byte offset into
// the given value, overwriting it in place. Exactly as many bytes as
// the value holds are read: slices must already have the number
// of elements to receive.
func (sb *StorageBuffer) Download(v MutableValue, offset int) error {
	if err := CheckLayout(v); err != nil {
		return errors.Log(fmt.Errorf("gpu.StorageBuffer Download binding %d: %w", sb.binding, err))
	}
	n := len(v.Bytes())
	if err := sb.checkRange("Download", offset, n); err != nil {
		return errors.Log(err)
	}
	if n == 0 {
		return nil
	}
	b := make([]byte, n)
	if err := sb.device.ReadBuffer(ShaderStorageBuffer, sb.handle, offset, b); err != nil {
		return errors.Log(err)
	}
	return errors.Log(v.SetBytes(b))
}

// Release frees the device buffer. It is safe to call more than once:
// the buffer is only freed the first time.
func (sb *StorageBuffer) Release() {
	if sb.handle == 0 {
		return
	}
	sb.device.DeleteBuffer(sb.handle)
	sb.handle = 0
}

// UploadSlice copies the given elements into the buffer at the given
// byte offset. The number of bytes is len(from) * sizeof(E).
func UploadSlice[E any](sb *StorageBuffer, from []E, offset int) error {
	return sb.Upload(Slice[E](from), offset)
}

// DownloadSlice copies len(dest) elements from the buffer at the given
// byte offset into dest.
func DownloadSlice[E any](sb *StorageBuffer, dest []E, offset int) error {
	return sb.Download(Slice[E](dest), offset)
}
