// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glkit/gpu"
)

// ErrNoShaderInput is returned by [NewPipelineShader]
// when neither a vertex nor a fragment source is given.
var ErrNoShaderInput = errors.New("glgpu: no shader input given")

// PipelineShader is a graphics program with a vertex stage,
// a fragment stage, or both.
type PipelineShader struct {
	Program
}

// NewPipelineShader compiles and links a graphics program from the given
// vertex and fragment sources, either of which can be nil but not both.
func NewPipelineShader(vertex, fragment *gpu.ShaderSource) (*PipelineShader, error) {
	srcs, err := pipelineSources(vertex, fragment)
	if err != nil {
		return nil, errors.Log(err)
	}
	name := "pipeline"
	for _, typ := range []ShaderStages{VertexStage, FragmentStage} {
		if ss, ok := srcs[typ]; ok {
			name += " " + ss.String()
		}
	}
	pr, err := newProgram(name, srcs)
	if err != nil {
		return nil, err
	}
	return &PipelineShader{Program: *pr}, nil
}

func pipelineSources(vertex, fragment *gpu.ShaderSource) (map[ShaderStages]gpu.ShaderSource, error) {
	if vertex == nil && fragment == nil {
		return nil, fmt.Errorf("glgpu.NewPipelineShader: %w", ErrNoShaderInput)
	}
	srcs := make(map[ShaderStages]gpu.ShaderSource, 2)
	if vertex != nil {
		srcs[VertexStage] = *vertex
	}
	if fragment != nil {
		srcs[FragmentStage] = *fragment
	}
	return srcs, nil
}
