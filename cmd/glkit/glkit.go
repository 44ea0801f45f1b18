// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glkit runs compute shaders over storage buffers
// and draws shapes with OpenGL.
//
// A command must be given:
//
//	glkit compute [shader.comp] [-n 16] [-factor 2] [-threads 64]
//	glkit draw [-watch]
package main

import (
	"embed"
	"fmt"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/glfwin"
	"cogentcore.org/glkit/glgpu"
	"cogentcore.org/glkit/gpu"
	"cogentcore.org/glkit/shape"
)

//go:embed double.comp
var shaders embed.FS

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Config is the configuration information for the glkit cli.
type Config struct {

	// Shader is the compute shader file to run. It must operate on an
	// array of uint at binding 0, and can use the n and factor uniforms.
	// If empty, a built in shader multiplying each element by factor is used.
	Shader string `cmd:"compute" posarg:"0" required:"-"`

	// N is the number of uint elements in the storage buffer,
	// which start out as 0, 1, 2...
	N int `cmd:"compute" default:"16"`

	// Factor is the value of the factor uniform.
	Factor uint32 `cmd:"compute" default:"2"`

	// Threads is the local size of the compute shader in x.
	Threads int `cmd:"compute" default:"64"`

	// Watch reloads the shaders of the window when their files change.
	Watch bool `cmd:"draw"`

	// Debug prints debugging information.
	Debug bool `flag:"d,debug"`

	// Window is the configuration of the window.
	Window glfwin.Config
}

// about is the description shown in the help of the command.
const about = "Runs compute shaders over storage buffers and draws shapes with OpenGL. " +
	"Commands: compute runs a compute shader over a buffer of uint and prints it, " +
	"draw opens a window with a rectangle and a rect."

// commands are the glkit commands, named by cli after their functions.
var commands = []func(c *Config) error{Compute, Draw}

func main() {
	opts := cli.DefaultOptions("glkit", about)
	cli.Run(opts, &Config{}, commands...)
}

// Compute runs the compute shader over a storage buffer of N elements
// in a hidden window, and prints the resulting elements.
func Compute(c *Config) error {
	gpu.Debug = c.Debug
	data, err := compute(c)
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}

func compute(c *Config) ([]uint32, error) {
	if c.N <= 0 {
		return nil, fmt.Errorf("glkit compute: invalid number of elements %d", c.N)
	}
	wc := c.Window
	wc.Visible = false
	w, err := glfwin.NewWindow(&wc)
	if err != nil {
		return nil, err
	}
	defer glfwin.Terminate()
	defer w.Release()

	src := gpu.FileSource(c.Shader)
	if c.Shader == "" {
		code, err := gpu.LoadFS(shaders, "double.comp")
		if err != nil {
			return nil, err
		}
		src = gpu.StringSource(code)
	}
	cs, err := glgpu.NewComputeShader(src)
	if err != nil {
		return nil, err
	}
	defer cs.Release()

	data := make([]uint32, c.N)
	for i := range data {
		data[i] = uint32(i)
	}
	sb, err := gpu.NewStorageBuffer(w.Device(), 0, gpu.Slice[uint32](data), gpu.DynamicCopy)
	if err != nil {
		return nil, err
	}
	defer sb.Release()

	// uniforms are optional for custom shaders, and errors are logged
	cs.SetUint("n", uint32(c.N))
	cs.SetUint("factor", c.Factor)
	cs.DispatchN(c.N, c.Threads, gpu.ShaderStorageBarrier|gpu.BufferUpdateBarrier)
	if err := errors.Log(glgpu.Error("Dispatch")); err != nil {
		return nil, err
	}
	if err := gpu.DownloadSlice(sb, data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

// Draw opens a window and draws a rectangle transformed on the CPU
// next to a rect transformed by the shader, until the window is closed.
func Draw(c *Config) error {
	gpu.Debug = c.Debug
	w, err := glfwin.NewWindow(&c.Window)
	if err != nil {
		return err
	}
	defer glfwin.Terminate()
	defer w.Release()

	dev := w.Device()
	sh := w.Shader()
	var watcher *gpu.SourceWatcher
	if c.Watch {
		watcher, err = gpu.NewSourceWatcher(sh.Sources()...)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	rectangle, err := shape.NewRectangle(dev, math32.Vec2(-0.5, 0), math32.Vec2(0.6, 0.6),
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 1, 0))
	if err != nil {
		return err
	}
	defer rectangle.Release()
	rectangle.Uniforms = sh

	rect, err := shape.NewRect(dev, sh, []shape.Vertex{
		{Position: math32.Vec3(0.2, 0.3, 0), Color: math32.Vec3(0, 1, 1)},
		{Position: math32.Vec3(0.8, 0.3, 0), Color: math32.Vec3(1, 0, 1)},
		{Position: math32.Vec3(0.8, -0.3, 0), Color: math32.Vec3(1, 1, 1)},
		{Position: math32.Vec3(0.2, -0.3, 0), Color: math32.Vec3(0, 0, 0)},
	})
	if err != nil {
		return err
	}
	defer rect.Release()

	for !w.ShouldClose() {
		if watcher != nil && watcher.Changed() {
			if err := sh.Reload(); err == nil {
				errors.Log(sh.SetFloat("scale", 1))
			}
		}
		w.Clear(0.1, 0.1, 0.1, 1)

		errors.Log(rectangle.Rotate(0.01))
		errors.Log(rectangle.Draw())

		errors.Log(rect.Rotate(-0.01))
		errors.Log(rect.Draw())

		w.SwapBuffers()
		glfwin.PollEvents()
	}
	return nil
}
