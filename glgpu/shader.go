// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// ShaderStages are the programmable stages of a shader program.
type ShaderStages int32

const (
	VertexStage ShaderStages = iota
	FragmentStage
	ComputeStage
	ShaderStagesN
)

var shaderStageNames = [ShaderStagesN]string{"Vertex", "Fragment", "Compute"}

func (st ShaderStages) String() string {
	if st < 0 || st >= ShaderStagesN {
		return fmt.Sprintf("ShaderStages(%d)", int32(st))
	}
	return shaderStageNames[st]
}

var glShaders = [ShaderStagesN]uint32{
	VertexStage:   gl.VERTEX_SHADER,
	FragmentStage: gl.FRAGMENT_SHADER,
	ComputeStage:  gl.COMPUTE_SHADER,
}

// infoLog returns a null-terminated info log of the given length as a string.
func infoLog(ln int32, get func(buf *uint8)) string {
	msg := strings.Repeat("\x00", int(ln+1))
	get(gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

// compileShader compiles the given source as a shader of the given type,
// returning its handle. The compiler log is included in the error.
func compileShader(typ ShaderStages, src string) (uint32, error) {
	handle := gl.CreateShader(glShaders[typ])
	if handle == 0 {
		return 0, fmt.Errorf("could not create %s shader: %v", typ, Error("CreateShader"))
	}
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var ln int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &ln)
		msg := infoLog(ln, func(buf *uint8) { gl.GetShaderInfoLog(handle, ln, nil, buf) })
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile %s shader:\n%s", typ, msg)
	}
	return handle, nil
}

// linkProgram links the given compiled shaders into a new program.
// The shaders are detached and deleted in all cases.
func linkProgram(shaders []uint32) (uint32, error) {
	handle := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(handle, sh)
	}
	gl.LinkProgram(handle)
	for _, sh := range shaders {
		gl.DetachShader(handle, sh)
		gl.DeleteShader(sh)
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var ln int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &ln)
		msg := infoLog(ln, func(buf *uint8) { gl.GetProgramInfoLog(handle, ln, nil, buf) })
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("failed to link program:\n%s", msg)
	}
	return handle, nil
}
