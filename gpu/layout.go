// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"reflect"
	"sync"
)

// plainCache caches the result of CheckPlain by type,
// as it is called on every transfer.
var plainCache sync.Map

// CheckPlain returns an [ErrLayout] error if values of the given type
// cannot be meaningfully copied byte-for-byte to the GPU: any
// pointer, slice, map, string, interface, channel or func anywhere
// in the type, or a struct with padding between or after its fields.
//
// Note that a Go bool is 1 byte whereas a GLSL bool is 4 bytes:
// use uint32 for booleans shared with shaders.
func CheckPlain(t reflect.Type) error {
	if err, ok := plainCache.Load(t); ok {
		if err == nil {
			return nil
		}
		return err.(error)
	}
	err := checkPlain(t)
	plainCache.Store(t, err)
	return err
}

func checkPlain(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return CheckPlain(t.Elem())
	case reflect.Struct:
		var sz uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			if err := CheckPlain(f.Type); err != nil {
				return fmt.Errorf("%s.%s: %w", t, f.Name, err)
			}
			sz += f.Type.Size()
		}
		if sz != t.Size() {
			return fmt.Errorf("%w: %s has %d bytes of padding", ErrLayout, t, t.Size()-sz)
		}
		return nil
	}
	return fmt.Errorf("%w: %s is a %s, which is not plain data", ErrLayout, t, t.Kind())
}

// CheckLayout calls CheckLayout on v if it is a [LayoutChecker].
func CheckLayout(v Value) error {
	if lc, ok := v.(LayoutChecker); ok {
		return lc.CheckLayout()
	}
	return nil
}
