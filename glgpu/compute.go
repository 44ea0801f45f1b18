// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/glkit/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// ComputeShader is a program with a single compute stage, which
// operates on the storage buffers bound to its binding indexes.
type ComputeShader struct {
	Program
}

// NewComputeShader compiles and links a compute shader from the given source.
func NewComputeShader(src gpu.ShaderSource) (*ComputeShader, error) {
	pr, err := newProgram("compute "+src.String(), map[ShaderStages]gpu.ShaderSource{ComputeStage: src})
	if err != nil {
		return nil, err
	}
	return &ComputeShader{Program: *pr}, nil
}

// Dispatch runs the compute shader over the given number of work groups
// in each dimension. If barrier is not [gpu.NoBarrier], a memory barrier
// of the given kinds is issued after the dispatch, so that the writes
// of the shader are visible to subsequent reads, for example
// [gpu.ShaderStorageBarrier] before downloading storage buffers.
func (cs *ComputeShader) Dispatch(x, y, z uint32, barrier gpu.Barriers) {
	if cs.handle == 0 {
		return
	}
	gl.UseProgram(cs.handle)
	gl.DispatchCompute(x, y, z)
	if barrier != gpu.NoBarrier {
		gl.MemoryBarrier(uint32(barrier))
	}
}

// DispatchN runs the compute shader over enough work groups in the
// x dimension to cover n elements, with the given number of threads
// (local_size_x) per work group.
func (cs *ComputeShader) DispatchN(n, threads int, barrier gpu.Barriers) {
	cs.Dispatch(uint32(gpu.Warps(n, threads)), 1, 1, barrier)
}
