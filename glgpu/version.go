// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion is the minimum OpenGL version, the first one with
// compute shaders and shader storage buffers.
var MinVersion = semver.MustParse("4.3")

// ParseVersion parses an OpenGL version string as returned by
// glGetString(GL_VERSION), such as "4.6.0 NVIDIA 535.54" or
// "OpenGL ES 3.2 Mesa 23.0", returning its leading version number.
func ParseVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "OpenGL ES ")
	fs := strings.Fields(s)
	if len(fs) == 0 {
		return nil, fmt.Errorf("glgpu.ParseVersion: empty version")
	}
	v, err := semver.NewVersion(fs[0])
	if err != nil {
		return nil, fmt.Errorf("glgpu.ParseVersion %q: %w", s, err)
	}
	return v, nil
}

// CheckVersion returns an error if the given OpenGL version string
// is lower than [MinVersion].
func CheckVersion(s string) error {
	v, err := ParseVersion(s)
	if err != nil {
		return err
	}
	if v.LessThan(MinVersion) {
		return fmt.Errorf("glgpu: OpenGL %s is not supported, need at least %s", v, MinVersion)
	}
	return nil
}
