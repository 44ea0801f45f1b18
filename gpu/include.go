// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/stringsx"
)

// maxIncludeDepth bounds nested #include processing.
const maxIncludeDepth = 16

// IncludeFS processes #include "file" statements in
// the given code string, using the given file system
// and default path to locate the included files.
// Included files are processed for their own includes,
// relative to their own directory. The #include line is
// kept as a comment, which is valid GLSL.
func IncludeFS(fsys fs.FS, dir, code string) (string, error) {
	return includeFS(fsys, dir, code, 0)
}

func includeFS(fsys fs.FS, dir, code string, depth int) (string, error) {
	if depth > maxIncludeDepth {
		return "", fmt.Errorf("gpu.IncludeFS: includes nested more than %d deep in %q", maxIncludeDepth, dir)
	}
	fl := stringsx.SplitLines(code)
	nl := len(fl)
	for li := nl - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		inc, ok := includeName(ln, li+1)
		if !ok {
			continue
		}
		fname := path.Join(dir, inc)
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			return "", fmt.Errorf("gpu.IncludeFS: could not find include %q in %q: %w", inc, dir, err)
		}
		inc, err = includeFS(fsys, path.Dir(fname), string(b), depth+1)
		if err != nil {
			return "", err
		}
		ol := stringsx.SplitLines(inc)
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return strings.Join(fl, "\n"), nil
}

// includeName returns the file named by the given trimmed line
// if it is an #include statement.
func includeName(ln string, line int) (string, bool) {
	if !strings.HasPrefix(ln, `#include "`) {
		return "", false
	}
	fn := ln[10:]
	qi := strings.Index(fn, `"`)
	if qi < 0 {
		slog.Error("gpu.IncludeFS: malformed #include: no final quote", "line", line)
		return "", false
	}
	return fn[:qi], true
}

// Includes returns the names of all the files included by the
// shader source file of the given name, directly or through other
// includes, in the order they are first seen. Names are relative
// to the root of the file system. Each file is only read once,
// so include cycles are not an error here.
func Includes(fsys fs.FS, name string) ([]string, error) {
	var names []string
	err := includes(fsys, name, &names)
	return names, err
}

func includes(fsys fs.FS, name string, names *[]string) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("gpu.Includes: %w", err)
	}
	dir := path.Dir(name)
	for li, ln := range stringsx.SplitLines(string(b)) {
		inc, ok := includeName(strings.TrimSpace(ln), li+1)
		if !ok {
			continue
		}
		fname := path.Join(dir, inc)
		if slices.Contains(*names, fname) {
			continue
		}
		*names = append(*names, fname)
		if err := includes(fsys, fname, names); err != nil {
			return err
		}
	}
	return nil
}
