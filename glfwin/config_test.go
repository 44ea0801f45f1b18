// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Window", cfg.Title)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.False(t, cfg.Fullscreen)
	assert.True(t, cfg.Resizable)
	assert.True(t, cfg.Visible)
	assert.Equal(t, 1, cfg.SwapInterval)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.Empty(t, cfg.VertexShader)
	assert.NoError(t, cfg.Validate())
}

func TestOpenConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "window.toml")
	err := os.WriteFile(fn, []byte(`Title = "Compute"
Width = 800
Visible = false
FragmentShader = "shaders/color.frag"
`), 0666)
	require.NoError(t, err)

	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "Compute", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.False(t, cfg.Visible)
	assert.Equal(t, "shaders/color.frag", cfg.FragmentShader)

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("Width = \"wide\""), 0666))
	_, err = OpenConfig(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	assert.Error(t, cfg.Validate())
	cfg.Fullscreen = true
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.GLMinor = 1
	assert.ErrorContains(t, cfg.Validate(), "4.3")
}

func TestEmbeddedShaders(t *testing.T) {
	src, err := configSource("", "shaders/default.vert")
	require.NoError(t, err)
	assert.False(t, src.IsFile())
	assert.Contains(t, src.Code, "uniform float scale;")

	src, err = configSource("my.frag", "shaders/default.frag")
	require.NoError(t, err)
	assert.Equal(t, "my.frag", src.Path)
}
