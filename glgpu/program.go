// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glkit/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// ErrNoUniform is returned when setting a uniform
// that is not active in the program.
var ErrNoUniform = errors.New("glgpu: uniform not found")

// Program manages a linked shader program, built from the sources
// of its stages, and the locations of its uniforms.
// It must only be used on the thread owning the GL context.
type Program struct {
	name    string
	handle  uint32
	sources map[ShaderStages]gpu.ShaderSource
	locs    map[string]int32
}

// newProgram builds a new program from the given stage sources.
func newProgram(name string, sources map[ShaderStages]gpu.ShaderSource) (*Program, error) {
	pr := &Program{name: name, sources: sources}
	h, err := pr.build()
	if err != nil {
		return nil, errors.Log(err)
	}
	pr.handle = h
	pr.locs = make(map[string]int32)
	return pr, nil
}

// build loads, compiles and links all the sources, returning
// the new program handle.
func (pr *Program) build() (uint32, error) {
	types := make([]ShaderStages, 0, len(pr.sources))
	for typ := range pr.sources {
		types = append(types, typ)
	}
	slices.Sort(types)
	shaders := make([]uint32, 0, len(types))
	for _, typ := range types {
		ss := pr.sources[typ]
		src, err := ss.Load()
		if err != nil {
			deleteShaders(shaders)
			return 0, fmt.Errorf("glgpu.Program %s: %w", pr.name, err)
		}
		sh, err := compileShader(typ, src)
		if err != nil {
			deleteShaders(shaders)
			return 0, fmt.Errorf("glgpu.Program %s %s: %w", pr.name, ss, err)
		}
		shaders = append(shaders, sh)
	}
	h, err := linkProgram(shaders)
	if err != nil {
		return 0, fmt.Errorf("glgpu.Program %s: %w", pr.name, err)
	}
	if gpu.Debug {
		slog.Info("glgpu.Program built", "name", pr.name, "handle", h)
	}
	return h, nil
}

func deleteShaders(shaders []uint32) {
	for _, sh := range shaders {
		gl.DeleteShader(sh)
	}
}

// Name returns the name of the program.
func (pr *Program) Name() string { return pr.name }

// Handle returns the GL program handle, 0 after Release.
func (pr *Program) Handle() uint32 { return pr.handle }

// Sources returns the sources of the program stages.
func (pr *Program) Sources() []gpu.ShaderSource {
	srcs := make([]gpu.ShaderSource, 0, len(pr.sources))
	for typ := ShaderStages(0); typ < ShaderStagesN; typ++ {
		if ss, ok := pr.sources[typ]; ok {
			srcs = append(srcs, ss)
		}
	}
	return srcs
}

// Use makes this the current program.
func (pr *Program) Use() {
	if pr.handle == 0 {
		return
	}
	gl.UseProgram(pr.handle)
}

// Reload rebuilds the program from its sources, typically after a
// [gpu.SourceWatcher] reports a change. If the new sources fail to
// build, the error is returned and the current program is kept.
func (pr *Program) Reload() error {
	h, err := pr.build()
	if err != nil {
		return errors.Log(err)
	}
	if pr.handle != 0 {
		gl.DeleteProgram(pr.handle)
	}
	pr.handle = h
	clear(pr.locs)
	return nil
}

// Release deletes the program. It is safe to call more than once.
func (pr *Program) Release() {
	if pr.handle == 0 {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	clear(pr.locs)
}

// location returns the location of the given uniform, which is cached.
func (pr *Program) location(name string) (int32, error) {
	if pr.handle == 0 {
		return -1, fmt.Errorf("glgpu.Program %s uniform %q: %w", pr.name, name, gpu.ErrReleased)
	}
	if loc, ok := pr.locs[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("glgpu.Program %s: %w: %q", pr.name, ErrNoUniform, name)
	}
	pr.locs[name] = loc
	return loc, nil
}
