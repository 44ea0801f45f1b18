// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageBufferRoundTrip(t *testing.T) {
	dev := NewMemDevice()
	res := resolution{X: 100, Y: 200}
	sb, err := NewStorageBuffer(dev, 1, Of(&res), StaticDraw)
	require.NoError(t, err)
	defer sb.Release()

	assert.Equal(t, 8, sb.Size())
	assert.Equal(t, 1, sb.Binding())
	assert.Equal(t, sb.Handle(), dev.Bound(ShaderStorageBuffer, 1))
	assert.Equal(t, StaticDraw, dev.Usage(sb.Handle()))

	var got resolution
	require.NoError(t, sb.Download(Of(&got), 0))
	assert.Equal(t, res, got)

	res2 := resolution{X: 7, Y: 9}
	require.NoError(t, sb.Upload(Of(&res2), 0))
	require.NoError(t, sb.Download(Of(&got), 0))
	assert.Equal(t, res2, got)
	// upload does not modify the host value
	assert.Equal(t, resolution{X: 7, Y: 9}, res2)
}

func TestStorageBufferDeviceWrite(t *testing.T) {
	dev := NewMemDevice()
	res := resolution{X: 200, Y: 200}
	sb, err := NewStorageBuffer(dev, 0, Of(&res), StaticDraw)
	require.NoError(t, err)
	defer sb.Release()

	// a shader writes {400, 400} on the device
	mem := dev.Mem(sb.Handle())
	binary.NativeEndian.PutUint32(mem[0:], 400)
	binary.NativeEndian.PutUint32(mem[4:], 400)

	require.NoError(t, sb.Download(Of(&res), 0))
	assert.Equal(t, resolution{X: 400, Y: 400}, res)

	// the same bytes read back as a packed pair
	tup := NewPair(uint32(0), uint32(0))
	require.NoError(t, sb.Download(tup, 0))
	assert.Equal(t, uint32(400), tup.First)
	assert.Equal(t, uint32(400), tup.Second)
}

func TestStorageBufferSlice(t *testing.T) {
	dev := NewMemDevice()
	vec := make([]uint32, 10)
	sb, err := NewStorageBuffer(dev, 1, Slice[uint32](vec), DynamicDraw)
	require.NoError(t, err)
	defer sb.Release()

	// exactly n * size bytes, not the slice header
	assert.Equal(t, 40, sb.Size())

	got := make([]uint32, 10)
	require.NoError(t, DownloadSlice(sb, got, 0))
	assert.Equal(t, vec, got)

	mem := dev.Mem(sb.Handle())
	for i := range 10 {
		binary.NativeEndian.PutUint32(mem[i*4:], 123)
	}
	require.NoError(t, DownloadSlice(sb, got, 0))
	for _, v := range got {
		assert.Equal(t, uint32(123), v)
	}
	assert.Len(t, got, 10)
}

func TestStorageBufferOffsets(t *testing.T) {
	dev := NewMemDevice()
	a := resolution{X: 1, Y: 2}
	b := [3]float32{3, 4, 5}
	sz := Sizeof[resolution]() + Sizeof[[3]float32]()
	sb, err := NewEmptyStorageBuffer(dev, 2, sz, DynamicCopy)
	require.NoError(t, err)
	defer sb.Release()
	assert.Equal(t, 20, sb.Size())

	require.NoError(t, sb.Upload(Of(&a), 0))
	require.NoError(t, sb.Upload(Of(&b), Sizeof[resolution]()))

	var ga resolution
	var gb [3]float32
	require.NoError(t, sb.Download(Of(&ga), 0))
	require.NoError(t, sb.Download(Of(&gb), Sizeof[resolution]()))
	assert.Equal(t, a, ga)
	assert.Equal(t, b, gb)

	// partial slice upload into the middle
	require.NoError(t, UploadSlice(sb, []float32{9}, 12))
	require.NoError(t, sb.Download(Of(&gb), 8))
	assert.Equal(t, [3]float32{3, 9, 5}, gb)
}

func TestStorageBufferIdempotentDownload(t *testing.T) {
	dev := NewMemDevice()
	sb, err := NewStorageBuffer(dev, 0, Slice[int32]{5, -6, 7}, StaticRead)
	require.NoError(t, err)
	defer sb.Release()

	a := make([]int32, 3)
	b := make([]int32, 3)
	require.NoError(t, DownloadSlice(sb, a, 0))
	require.NoError(t, DownloadSlice(sb, b, 0))
	assert.Equal(t, a, b)
	assert.Equal(t, []int32{5, -6, 7}, a)
}

func TestStorageBufferRange(t *testing.T) {
	dev := NewMemDevice()
	sb, err := NewEmptyStorageBuffer(dev, 0, 8, StreamDraw)
	require.NoError(t, err)
	defer sb.Release()

	res := resolution{X: 1, Y: 1}
	assert.ErrorIs(t, sb.Upload(Of(&res), 4), ErrOutOfRange)
	assert.ErrorIs(t, sb.Upload(Of(&res), -1), ErrOutOfRange)
	assert.ErrorIs(t, sb.Download(Of(&res), 1), ErrOutOfRange)
	assert.ErrorIs(t, DownloadSlice(sb, make([]uint32, 3), 0), ErrOutOfRange)
	assert.NoError(t, UploadSlice(sb, []uint32{1}, 4))

	// offset + length must not wrap around
	assert.ErrorIs(t, sb.Upload(Of(&res), math.MaxInt-2), ErrOutOfRange)
	assert.ErrorIs(t, sb.Download(Of(&res), math.MaxInt), ErrOutOfRange)
	assert.ErrorIs(t, sb.Upload(Raw{}, math.MaxInt), ErrOutOfRange)
	assert.Error(t, dev.WriteBuffer(ShaderStorageBuffer, sb.Handle(), math.MaxInt-2, make([]byte, 8)))
	assert.Error(t, dev.ReadBuffer(ShaderStorageBuffer, sb.Handle(), math.MaxInt-2, make([]byte, 8)))
}

func TestStorageBufferTransferLayout(t *testing.T) {
	dev := NewMemDevice()
	sb, err := NewEmptyStorageBuffer(dev, 0, Sizeof[withPointer](), DynamicRead)
	require.NoError(t, err)
	defer sb.Release()
	mem := dev.Mem(sb.Handle())
	for i := range mem {
		mem[i] = 0xab
	}

	x := uint32(3)
	wp := withPointer{N: 1, P: &x}
	assert.ErrorIs(t, sb.Download(Of(&wp), 0), ErrLayout)
	assert.Equal(t, uint32(1), wp.N)
	assert.Same(t, &x, wp.P)

	assert.ErrorIs(t, sb.Upload(Of(&wp), 0), ErrLayout)
	assert.Equal(t, byte(0xab), mem[0])

	var p padded
	assert.ErrorIs(t, sb.Upload(Of(&p), 0), ErrLayout)
	assert.ErrorIs(t, sb.Download(Slice[padded](make([]padded, 1)), 0), ErrLayout)
}

func TestStorageBufferRelease(t *testing.T) {
	dev := NewMemDevice()
	sb, err := NewEmptyStorageBuffer(dev, 0, 16, StaticDraw)
	require.NoError(t, err)
	h := sb.Handle()
	assert.Equal(t, 1, dev.Live())
	assert.False(t, sb.Released())

	sb.Release()
	sb.Release()
	assert.True(t, sb.Released())
	assert.Equal(t, 1, dev.Frees(h))
	assert.Equal(t, 0, dev.Live())
	assert.Equal(t, uint32(0), dev.Bound(ShaderStorageBuffer, 0))

	var res resolution
	assert.ErrorIs(t, sb.Upload(Of(&res), 0), ErrReleased)
	assert.ErrorIs(t, sb.Download(Of(&res), 0), ErrReleased)
}

func TestStorageBufferErrors(t *testing.T) {
	dev := NewMemDevice()
	_, err := NewEmptyStorageBuffer(dev, 0, 0, StaticDraw)
	assert.Error(t, err)

	_, err = NewStorageBuffer(dev, 0, Slice[uint32]{}, StaticDraw)
	assert.ErrorIs(t, err, ErrLayout)

	var p padded
	_, err = NewStorageBuffer(dev, 0, Of(&p), StaticDraw)
	assert.ErrorIs(t, err, ErrLayout)

	dev.Limit = 64
	_, err = NewEmptyStorageBuffer(dev, 0, 65, StaticDraw)
	assert.Error(t, err)
	sb, err := NewEmptyStorageBuffer(dev, 0, 64, StaticDraw)
	require.NoError(t, err)
	_, err = NewEmptyStorageBuffer(dev, 1, 1, StaticDraw)
	assert.Error(t, err)
	sb.Release()
	assert.Equal(t, 0, dev.Allocated())
}
