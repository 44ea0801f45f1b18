// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Value is a host value with a fixed memory layout that can be
// copied byte-for-byte into a device buffer.
// Bytes returns a view of the value's memory: for [Ref] and [Slice]
// the returned bytes alias the value itself, so the value must stay
// alive and unmodified for the duration of the transfer.
type Value interface {
	Bytes() []byte
}

// MutableValue is a [Value] that can be overwritten in place
// with bytes read back from a device buffer.
// SetBytes returns an [ErrLayout] error if len(b) is not exactly
// the size of the value: values are never grown or shrunk.
type MutableValue interface {
	Value
	SetBytes(b []byte) error
}

// LayoutChecker is implemented by values that can verify that their
// memory layout is plain data (see [CheckPlain]).
type LayoutChecker interface {
	CheckLayout() error
}

// Sizeof returns the in-memory size of type T in bytes.
func Sizeof[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// ValueBytes returns the bytes of the value pointed to by v,
// aliasing its memory.
func ValueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SliceBytes returns the bytes of the live elements of s, starting at
// the first element, with length len(s) * sizeof(E). The slice header
// itself is never part of the view. Returns nil for an empty slice.
func SliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*Sizeof[E]())
}

// setBytes copies from into the view to, checking that sizes match.
func setBytes(name string, to, from []byte) error {
	if len(from) != len(to) {
		return fmt.Errorf("%w: %s SetBytes, Size passed: %d != Size expected %d", ErrLayout, name, len(from), len(to))
	}
	copy(to, from)
	return nil
}

//////// Ref

// Ref is a [MutableValue] for a single scalar or fixed-size struct,
// referenced by pointer. Use [Of] to make one.
type Ref[T any] struct {
	V *T
}

// Of returns a [Ref] to the given value.
func Of[T any](v *T) Ref[T] {
	return Ref[T]{V: v}
}

func (r Ref[T]) Bytes() []byte {
	return ValueBytes(r.V)
}

func (r Ref[T]) SetBytes(b []byte) error {
	return setBytes(reflect.TypeFor[T]().String(), r.Bytes(), b)
}

func (r Ref[T]) CheckLayout() error {
	return CheckPlain(reflect.TypeFor[T]())
}

//////// Slice

// Slice is a [MutableValue] for a contiguous slice of fixed-size
// elements. A plain []E converts directly: Slice[E](s).
type Slice[E any] []E

func (s Slice[E]) Bytes() []byte {
	return SliceBytes(s)
}

// SetBytes copies b into the existing elements. The slice must
// already have the number of elements to receive.
func (s Slice[E]) SetBytes(b []byte) error {
	return setBytes(reflect.TypeFor[[]E]().String(), s.Bytes(), b)
}

func (s Slice[E]) CheckLayout() error {
	return CheckPlain(reflect.TypeFor[E]())
}

//////// Pair

// Pair holds two values that are transferred packed, First
// immediately followed by Second with no padding in between,
// regardless of how Go lays out the struct in memory.
// Its byte length is always sizeof(A) + sizeof(B).
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair returns a new [Pair] of the given values.
func NewPair[A, B any](a A, b B) *Pair[A, B] {
	return &Pair[A, B]{First: a, Second: b}
}

// Len returns the packed byte length of the pair.
func (p *Pair[A, B]) Len() int {
	return Sizeof[A]() + Sizeof[B]()
}

// Bytes returns a packed copy of the pair.
func (p *Pair[A, B]) Bytes() []byte {
	b := make([]byte, 0, p.Len())
	b = append(b, ValueBytes(&p.First)...)
	return append(b, ValueBytes(&p.Second)...)
}

func (p *Pair[A, B]) SetBytes(b []byte) error {
	if len(b) != p.Len() {
		return fmt.Errorf("%w: %s SetBytes, Size passed: %d != Size expected %d", ErrLayout, reflect.TypeFor[Pair[A, B]](), len(b), p.Len())
	}
	na := Sizeof[A]()
	copy(ValueBytes(&p.First), b[:na])
	copy(ValueBytes(&p.Second), b[na:])
	return nil
}

func (p *Pair[A, B]) CheckLayout() error {
	if err := CheckPlain(reflect.TypeFor[A]()); err != nil {
		return err
	}
	return CheckPlain(reflect.TypeFor[B]())
}

//////// Raw

// Raw is a [MutableValue] of plain bytes.
type Raw []byte

func (r Raw) Bytes() []byte {
	return r
}

func (r Raw) SetBytes(b []byte) error {
	return setBytes("gpu.Raw", r, b)
}
