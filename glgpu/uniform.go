// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// The uniform setters below set the value of the named uniform in
// the program, which is made current first. An error wrapping
// [ErrNoUniform] is returned if the program has no such active uniform.

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// set makes the program current and calls fun with the
// location of the named uniform.
func (pr *Program) set(name string, fun func(loc int32)) error {
	loc, err := pr.location(name)
	if err != nil {
		return errors.Log(err)
	}
	gl.UseProgram(pr.handle)
	fun(loc)
	return nil
}

func (pr *Program) SetBool(name string, v bool) error {
	return pr.set(name, func(loc int32) { gl.Uniform1i(loc, b2i(v)) })
}

func (pr *Program) SetBool2(name string, v [2]bool) error {
	return pr.set(name, func(loc int32) { gl.Uniform2i(loc, b2i(v[0]), b2i(v[1])) })
}

func (pr *Program) SetBool3(name string, v [3]bool) error {
	return pr.set(name, func(loc int32) { gl.Uniform3i(loc, b2i(v[0]), b2i(v[1]), b2i(v[2])) })
}

func (pr *Program) SetBool4(name string, v [4]bool) error {
	return pr.set(name, func(loc int32) { gl.Uniform4i(loc, b2i(v[0]), b2i(v[1]), b2i(v[2]), b2i(v[3])) })
}

func (pr *Program) SetFloat(name string, v float32) error {
	return pr.set(name, func(loc int32) { gl.Uniform1f(loc, v) })
}

func (pr *Program) SetFloat2(name string, v math32.Vector2) error {
	return pr.set(name, func(loc int32) { gl.Uniform2f(loc, v.X, v.Y) })
}

func (pr *Program) SetFloat3(name string, v math32.Vector3) error {
	return pr.set(name, func(loc int32) { gl.Uniform3f(loc, v.X, v.Y, v.Z) })
}

func (pr *Program) SetFloat4(name string, v math32.Vector4) error {
	return pr.set(name, func(loc int32) { gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W) })
}

func (pr *Program) SetInt(name string, v int32) error {
	return pr.set(name, func(loc int32) { gl.Uniform1i(loc, v) })
}

func (pr *Program) SetInt2(name string, v math32.Vector2i) error {
	return pr.set(name, func(loc int32) { gl.Uniform2i(loc, v.X, v.Y) })
}

func (pr *Program) SetInt3(name string, v math32.Vector3i) error {
	return pr.set(name, func(loc int32) { gl.Uniform3i(loc, v.X, v.Y, v.Z) })
}

func (pr *Program) SetInt4(name string, v [4]int32) error {
	return pr.set(name, func(loc int32) { gl.Uniform4i(loc, v[0], v[1], v[2], v[3]) })
}

func (pr *Program) SetUint(name string, v uint32) error {
	return pr.set(name, func(loc int32) { gl.Uniform1ui(loc, v) })
}

func (pr *Program) SetUint2(name string, v [2]uint32) error {
	return pr.set(name, func(loc int32) { gl.Uniform2ui(loc, v[0], v[1]) })
}

func (pr *Program) SetUint3(name string, v [3]uint32) error {
	return pr.set(name, func(loc int32) { gl.Uniform3ui(loc, v[0], v[1], v[2]) })
}

func (pr *Program) SetUint4(name string, v [4]uint32) error {
	return pr.set(name, func(loc int32) { gl.Uniform4ui(loc, v[0], v[1], v[2], v[3]) })
}

// SetMatrix3 sets a mat3 uniform from a column-major matrix.
func (pr *Program) SetMatrix3(name string, v *math32.Matrix3) error {
	return pr.set(name, func(loc int32) { gl.UniformMatrix3fv(loc, 1, false, &v[0]) })
}

// SetMatrix4 sets a mat4 uniform from a column-major matrix.
func (pr *Program) SetMatrix4(name string, v *math32.Matrix4) error {
	return pr.set(name, func(loc int32) { gl.UniformMatrix4fv(loc, 1, false, &v[0]) })
}

// SetUniform sets the named uniform to the given value, which must be
// one of the types accepted by the typed setters. Go int and uint
// values are converted to their 32 bit versions, and float64 to float32.
func (pr *Program) SetUniform(name string, v any) error {
	switch x := v.(type) {
	case bool:
		return pr.SetBool(name, x)
	case [2]bool:
		return pr.SetBool2(name, x)
	case [3]bool:
		return pr.SetBool3(name, x)
	case [4]bool:
		return pr.SetBool4(name, x)
	case float32:
		return pr.SetFloat(name, x)
	case float64:
		return pr.SetFloat(name, float32(x))
	case math32.Vector2:
		return pr.SetFloat2(name, x)
	case math32.Vector3:
		return pr.SetFloat3(name, x)
	case math32.Vector4:
		return pr.SetFloat4(name, x)
	case int32:
		return pr.SetInt(name, x)
	case int:
		return pr.SetInt(name, int32(x))
	case math32.Vector2i:
		return pr.SetInt2(name, x)
	case math32.Vector3i:
		return pr.SetInt3(name, x)
	case [4]int32:
		return pr.SetInt4(name, x)
	case uint32:
		return pr.SetUint(name, x)
	case uint:
		return pr.SetUint(name, uint32(x))
	case [2]uint32:
		return pr.SetUint2(name, x)
	case [3]uint32:
		return pr.SetUint3(name, x)
	case [4]uint32:
		return pr.SetUint4(name, x)
	case math32.Matrix3:
		return pr.SetMatrix3(name, &x)
	case *math32.Matrix3:
		return pr.SetMatrix3(name, x)
	case math32.Matrix4:
		return pr.SetMatrix4(name, &x)
	case *math32.Matrix4:
		return pr.SetMatrix4(name, x)
	}
	return errors.Log(fmt.Errorf("glgpu.Program %s SetUniform %q: unsupported type %T", pr.name, name, v))
}
