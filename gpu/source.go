// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ShaderSource is the source code of a shader, given either
// as a file path or directly as code. If Path is set it takes
// precedence over Code.
type ShaderSource struct {
	// Path is a file to load the source from.
	// #include "file" lines are resolved relative to it.
	Path string

	// Code is literal shader source code.
	Code string
}

// FileSource returns a [ShaderSource] loaded from the given file.
func FileSource(path string) ShaderSource {
	return ShaderSource{Path: path}
}

// StringSource returns a [ShaderSource] for the given code.
func StringSource(code string) ShaderSource {
	return ShaderSource{Code: code}
}

// IsFile returns whether the source is loaded from a file.
func (ss ShaderSource) IsFile() bool {
	return ss.Path != ""
}

// String returns the file path or a short description of the code.
func (ss ShaderSource) String() string {
	if ss.IsFile() {
		return ss.Path
	}
	return fmt.Sprintf("<%d bytes of code>", len(ss.Code))
}

// Load returns the shader source code, reading it from the file
// and processing includes for file sources. It only fails if the
// file or one of its includes cannot be read.
func (ss ShaderSource) Load() (string, error) {
	if !ss.IsFile() {
		return ss.Code, nil
	}
	return LoadFS(os.DirFS(filepath.Dir(ss.Path)), filepath.Base(ss.Path))
}

// LoadFS reads the shader source file of the given name from
// the given file system, processing includes relative to it.
// This is used for shaders embedded with go:embed.
func LoadFS(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("gpu.ShaderSource Load: %w", err)
	}
	return IncludeFS(fsys, filepath.ToSlash(filepath.Dir(name)), string(b))
}
