// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwin

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/pelletier/go-toml/v2"
)

// Config has the parameters for opening a [Window].
type Config struct {

	// Title is the title of the window.
	Title string `default:"Window"`

	// Width is the width of the window in screen coordinates.
	Width int `default:"400"`

	// Height is the height of the window in screen coordinates.
	Height int `default:"400"`

	// Fullscreen opens the window fullscreen on the primary monitor,
	// at the size of its current video mode.
	Fullscreen bool

	// Resizable is whether the window can be resized by the user.
	Resizable bool `default:"true"`

	// Visible is whether the window is shown. Hidden windows
	// are useful for offscreen compute work.
	Visible bool `default:"true"`

	// SwapInterval is the number of screen updates to wait
	// for before swapping buffers (vsync).
	SwapInterval int `default:"1"`

	// GLMajor and GLMinor are the requested OpenGL core profile version,
	// which must be at least 4.3 for compute shaders and storage buffers.
	GLMajor int `default:"4"`
	GLMinor int `default:"3"`

	// VertexShader is the file of the vertex shader of the default
	// pipeline. If empty, a built in shader is used.
	VertexShader string

	// FragmentShader is the file of the fragment shader of the default
	// pipeline. If empty, a built in shader is used.
	FragmentShader string
}

// DefaultConfig returns a new [Config] with the default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	errors.Log(cli.SetFromDefaults(cfg))
	return cfg
}

// OpenConfig returns a new [Config] with the default values
// overridden by those in the given TOML file.
func OpenConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Log(fmt.Errorf("glfwin.OpenConfig %s: %w", filename, err))
	}
	return cfg, nil
}

// Validate returns an error if the config cannot be used to open a window.
func (cfg *Config) Validate() error {
	if !cfg.Fullscreen && (cfg.Width <= 0 || cfg.Height <= 0) {
		return fmt.Errorf("glfwin.Config: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.GLMajor < 4 || (cfg.GLMajor == 4 && cfg.GLMinor < 3) {
		return fmt.Errorf("glfwin.Config: OpenGL %d.%d does not support compute shaders, need at least 4.3", cfg.GLMajor, cfg.GLMinor)
	}
	return nil
}
