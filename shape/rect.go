// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu"
)

// Rect is a quadrilateral whose vertices stay fixed on the device:
// its transforms are sent to the shader as the center, angle and scale
// uniforms when it is drawn.
type Rect struct {
	center math32.Vector2
	angle  float32
	scale  float32

	uniforms Uniforms
	verts    []Vertex
	mesh     *mesh
}

// RectIndexes are the indexes of the triangle strip of a [Rect].
var RectIndexes = []uint32{0, 1, 3, 2}

// NewRect returns a new rect for the given four corners, which must be
// in clockwise order starting from the top left corner:
//
//	0 -- 1
//	|    |
//	3 -- 2
//
// The vertices are stored relative to their average position,
// which becomes the center of the rect.
func NewRect(dev gpu.Device, uniforms Uniforms, verts []Vertex) (*Rect, error) {
	if len(verts) != 4 {
		return nil, fmt.Errorf("shape.NewRect: need 4 vertices, got %d", len(verts))
	}
	c := center(verts)
	rel := make([]Vertex, len(verts))
	for i, v := range verts {
		v.Position.X -= c.X
		v.Position.Y -= c.Y
		rel[i] = v
	}
	ms, err := newMesh(dev, rel, RectIndexes, DefaultLayout, gpu.StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("shape.NewRect: %w", err)
	}
	return &Rect{center: c, scale: 1, uniforms: uniforms, verts: rel, mesh: ms}, nil
}

// Center returns the center of the rect.
func (rc *Rect) Center() math32.Vector2 { return rc.center }

// Angle returns the rotation of the rect in radians.
func (rc *Rect) Angle() float32 { return rc.angle }

// ScaleFactor returns the scale of the rect.
func (rc *Rect) ScaleFactor() float32 { return rc.scale }

// Vertices returns the vertices of the rect relative to its center.
func (rc *Rect) Vertices() []Vertex { return rc.verts }

// Draw sets the transform uniforms and draws the rect.
func (rc *Rect) Draw() error {
	if err := rc.uniforms.SetFloat2("center", rc.center); err != nil {
		return err
	}
	if err := rc.uniforms.SetFloat("angle", rc.angle); err != nil {
		return err
	}
	if err := rc.uniforms.SetFloat("scale", rc.scale); err != nil {
		return err
	}
	rc.mesh.draw(gpu.TriangleStrip, len(RectIndexes))
	return nil
}

func (rc *Rect) Translate(delta math32.Vector2) error {
	rc.center = rc.center.Add(delta)
	return nil
}

func (rc *Rect) Rotate(angle float32) error {
	rc.angle += angle
	return nil
}

func (rc *Rect) Scale(factor float32) error {
	rc.scale *= factor
	return nil
}

// Release frees the device objects of the rect.
func (rc *Rect) Release() {
	rc.mesh.release()
}
