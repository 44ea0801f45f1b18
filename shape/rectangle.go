// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu"
)

// Rectangle is an axis aligned rectangle whose transforms are applied
// to its vertices on the CPU, which are then transferred to the device.
// If Uniforms is set, Draw resets the center, angle and scale uniforms
// of the shader to their identity values first, so that transforms of
// a [Rect] drawn before do not apply to the rectangle.
type Rectangle struct {
	// Uniforms, if set, are reset before drawing.
	Uniforms Uniforms

	center math32.Vector2
	verts  []Vertex
	mesh   *mesh
}

// RectangleIndexes are the indexes of the two triangles of a [Rectangle].
var RectangleIndexes = []uint32{0, 1, 2, 0, 2, 3}

// NewRectangle returns a new rectangle with the given center and size.
// Colors can have one color for all corners, or four colors for the
// corners in the order of the vertices: bottom left, bottom right,
// top right, top left. Otherwise the corners are [White].
func NewRectangle(dev gpu.Device, center, size math32.Vector2, colors ...math32.Vector3) (*Rectangle, error) {
	hw, hh := size.X/2, size.Y/2
	corners := []math32.Vector2{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
	clrs := make([]math32.Vector3, 4)
	for i := range clrs {
		switch len(colors) {
		case 1:
			clrs[i] = colors[0]
		case 4:
			clrs[i] = colors[i]
		default:
			clrs[i] = White
		}
	}
	verts := make([]Vertex, 4)
	for i, c := range corners {
		verts[i] = Vertex{Position: math32.Vec3(c.X, c.Y, 0), Color: clrs[i]}
	}
	ms, err := newMesh(dev, verts, RectangleIndexes, DefaultLayout, gpu.DynamicDraw)
	if err != nil {
		return nil, fmt.Errorf("shape.NewRectangle: %w", err)
	}
	return &Rectangle{center: center, verts: verts, mesh: ms}, nil
}

// Center returns the current center of the rectangle.
func (rc *Rectangle) Center() math32.Vector2 { return rc.center }

// Vertices returns the current vertices of the rectangle.
func (rc *Rectangle) Vertices() []Vertex { return rc.verts }

func (rc *Rectangle) Draw() error {
	if u := rc.Uniforms; u != nil {
		if err := u.SetFloat2("center", math32.Vector2{}); err != nil {
			return err
		}
		if err := u.SetFloat("angle", 0); err != nil {
			return err
		}
		if err := u.SetFloat("scale", 1); err != nil {
			return err
		}
	}
	rc.mesh.draw(gpu.Triangles, len(RectangleIndexes))
	return nil
}

func (rc *Rectangle) Translate(delta math32.Vector2) error {
	for i := range rc.verts {
		p := &rc.verts[i].Position
		p.X += delta.X
		p.Y += delta.Y
	}
	rc.center = rc.center.Add(delta)
	return rc.mesh.transfer(rc.verts)
}

func (rc *Rectangle) Rotate(angle float32) error {
	sin, cos := math32.Sincos(angle)
	for i := range rc.verts {
		p := &rc.verts[i].Position
		x, y := p.X-rc.center.X, p.Y-rc.center.Y
		p.X = x*cos - y*sin + rc.center.X
		p.Y = x*sin + y*cos + rc.center.Y
	}
	return rc.mesh.transfer(rc.verts)
}

func (rc *Rectangle) Scale(factor float32) error {
	for i := range rc.verts {
		p := &rc.verts[i].Position
		p.X = (p.X-rc.center.X)*factor + rc.center.X
		p.Y = (p.Y-rc.center.Y)*factor + rc.center.Y
	}
	return rc.mesh.transfer(rc.verts)
}

// Release frees the device objects of the rectangle.
func (rc *Rectangle) Release() {
	rc.mesh.release()
}
