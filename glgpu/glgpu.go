// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu.Device interface on OpenGL 4.3
// core, and provides shader programs: compute shaders dispatched
// over shader storage buffers, and vertex + fragment pipelines,
// with typed uniform setters.
//
// A current OpenGL context is required for everything in this
// package (see the glfwin package), and all calls must be made from
// the thread that owns it: call runtime.LockOSThread in an init
// function of the main package.
package glgpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
// It must be called after a context is made current, before any other
// call in this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu.Init: could not initialize OpenGL: %w", err)
	}
	version := Version()
	slog.Info("glgpu: OpenGL initialized", "version", version, "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return CheckVersion(version)
}

// Version returns the OpenGL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

var glErrors = map[uint32]string{
	gl.INVALID_ENUM:                  "invalid enum",
	gl.INVALID_VALUE:                 "invalid value",
	gl.INVALID_OPERATION:             "invalid operation",
	gl.OUT_OF_MEMORY:                 "out of memory",
	gl.INVALID_FRAMEBUFFER_OPERATION: "invalid framebuffer operation",
}

// Error returns an error for the first pending OpenGL error flag,
// after the given operation, clearing all the pending flags.
// It returns nil if there were no errors.
func Error(op string) error {
	var errs []string
	for range 8 {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		nm, ok := glErrors[code]
		if !ok {
			nm = fmt.Sprintf("0x%X", code)
		}
		errs = append(errs, nm)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("glgpu %s: OpenGL error: %v", op, errs)
}
