// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/glkit/gpu"
)

// Custom is a shape with any list of vertices drawn in any mode,
// without indexes.
type Custom struct {
	Mode gpu.DrawModes

	verts []Vertex
	mesh  *mesh
}

// NewCustom returns a new custom shape drawing the given vertices in
// the given mode. The layout gives the attribute locations in the
// shader, and is [DefaultLayout] if nil.
func NewCustom(dev gpu.Device, verts []Vertex, mode gpu.DrawModes, layout *Layout) (*Custom, error) {
	if len(verts) == 0 {
		return nil, fmt.Errorf("shape.NewCustom: no vertices")
	}
	ly := DefaultLayout
	if layout != nil {
		ly = *layout
	}
	ms, err := newMesh(dev, verts, nil, ly, gpu.StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("shape.NewCustom: %w", err)
	}
	return &Custom{Mode: mode, verts: verts, mesh: ms}, nil
}

// Vertices returns the vertices of the shape.
func (cs *Custom) Vertices() []Vertex { return cs.verts }

func (cs *Custom) Draw() error {
	cs.mesh.draw(cs.Mode, len(cs.verts))
	return nil
}

// Release frees the device objects of the shape.
func (cs *Custom) Release() {
	cs.mesh.release()
}
