// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwin opens glfw windows with an OpenGL 4.3 core context,
// a [glgpu.Device] for it, and a default [glgpu.PipelineShader].
//
// GLFW and OpenGL must be used from the main thread, so main packages
// must call runtime.LockOSThread in their init function.
package glfwin

import (
	"embed"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glkit/glgpu"
	"cogentcore.org/glkit/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shaders/*.vert shaders/*.frag
var shaders embed.FS

// Window is a glfw window owning an OpenGL context.
type Window struct {

	// Config is the config the window was opened with.
	Config Config

	glw    *glfw.Window
	device *glgpu.Device
	shader *glgpu.PipelineShader
}

// Init initializes glfw. It is called by [NewWindow] and
// can be called more than once.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate destroys all remaining windows and shuts down glfw:
// call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// NewWindow opens a new window with the given config, which can be nil
// to use [DefaultConfig]. Its context is made current, and its default
// pipeline shader is built from the shader files of the config, or the
// built in shaders for those not given.
func NewWindow(cfg *Config) (*Window, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	if err := Init(); err != nil {
		return nil, err
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(cfg.Visible))

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			return nil, errors.Log(fmt.Errorf("glfwin.NewWindow %q: no monitor for fullscreen", cfg.Title))
		}
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}
	glw, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glfwin.NewWindow %q: %w", cfg.Title, err))
	}
	glw.MakeContextCurrent()
	if err := glgpu.Init(); err != nil {
		glw.Destroy()
		return nil, err
	}
	glfw.SwapInterval(cfg.SwapInterval)

	w := &Window{Config: *cfg, glw: glw, device: glgpu.NewDevice()}
	w.shader, err = defaultShader(cfg)
	if err != nil {
		glw.Destroy()
		return nil, err
	}
	glw.SetKeyCallback(func(glw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			glw.SetShouldClose(true)
		}
	})
	glw.SetFramebufferSizeCallback(func(glw *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	if gpu.Debug {
		slog.Info("glfwin.NewWindow", "title", cfg.Title, "width", width, "height", height)
	}
	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// defaultShader builds the default pipeline shader for the config.
func defaultShader(cfg *Config) (*glgpu.PipelineShader, error) {
	vert, err := configSource(cfg.VertexShader, "shaders/default.vert")
	if err != nil {
		return nil, err
	}
	frag, err := configSource(cfg.FragmentShader, "shaders/default.frag")
	if err != nil {
		return nil, err
	}
	sh, err := glgpu.NewPipelineShader(&vert, &frag)
	if err != nil {
		return nil, err
	}
	// the uniforms of the built in vertex shader default to 0
	if cfg.VertexShader == "" {
		errors.Log(sh.SetFloat("scale", 1))
	}
	return sh, nil
}

// configSource returns a file source for the given file if it is set,
// and otherwise the embedded source of the given name.
func configSource(file, embedded string) (gpu.ShaderSource, error) {
	if file != "" {
		return gpu.FileSource(file), nil
	}
	code, err := gpu.LoadFS(shaders, embedded)
	if err != nil {
		return gpu.ShaderSource{}, errors.Log(err)
	}
	return gpu.StringSource(code), nil
}

// Device returns the device for the context of the window.
func (w *Window) Device() *glgpu.Device { return w.device }

// Shader returns the default pipeline shader of the window.
func (w *Window) Shader() *glgpu.PipelineShader { return w.shader }

// Glfw returns the underlying glfw window.
func (w *Window) Glfw() *glfw.Window { return w.glw }

// MakeCurrent makes the context of the window current on this thread.
func (w *Window) MakeCurrent() {
	w.glw.MakeContextCurrent()
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets whether the window should close.
func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

// Size returns the size of the framebuffer of the window in pixels.
func (w *Window) Size() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Point{width, height}
}

// Clear clears the color and depth buffers to the given color.
func (w *Window) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers shows what has been drawn.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// PollEvents processes pending events for all windows.
func PollEvents() {
	glfw.PollEvents()
}

// Release deletes the default shader and destroys the window.
// It is safe to call more than once.
func (w *Window) Release() {
	if w.glw == nil {
		return
	}
	w.glw.MakeContextCurrent()
	if w.shader != nil {
		w.shader.Release()
		w.shader = nil
	}
	w.glw.Destroy()
	w.glw = nil
}
