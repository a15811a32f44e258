// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sizedvec implements immutable sequences whose length is part of
// their contract. Every shape-changing operation states its length algebra
// (Append adds lengths, Split subtracts) and checks it on entry, so a
// malformed shape is reported at the operation that created it, never
// downstream.
//
// Element access goes through fixnum.Index values bounded by the vector
// length, which makes out of range access unrepresentable once the Index
// has been constructed.
//
package sizedvec

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/benreynwar/clash-prelude/fixnum"
)

// A Vec is an immutable sequence of exactly Len() elements. The zero value
// is the empty vector.
//
type Vec[A any] struct {
	xs []A
}

// Of returns the vector holding the given elements.
//
func Of[A any](xs ...A) Vec[A] {
	v := Vec[A]{xs: make([]A, len(xs))}
	copy(v.xs, xs)
	return v
}

// Generate returns the length-n vector whose element i is f(i).
//
func Generate[A any](n int, f func(i int) A) Vec[A] {
	if n < 0 {
		panic("sizedvec: negative length " + strconv.Itoa(n))
	}
	v := Vec[A]{xs: make([]A, n)}
	for i := range v.xs {
		v.xs[i] = f(i)
	}
	return v
}

// Repeat returns the length-n vector with every element set to x.
//
func Repeat[A any](n int, x A) Vec[A] {
	return Generate(n, func(int) A { return x })
}

// Iota returns the length-n vector 0, 1, ..., n-1.
//
func Iota[T constraints.Integer](n int) Vec[T] {
	return Generate(n, func(i int) T { return T(i) })
}

// Len returns the number of elements in v.
//
func (v Vec[A]) Len() int { return len(v.xs) }

// At returns the element at position i. The bound of i must equal the
// vector length; the access itself is then in range by construction.
//
func (v Vec[A]) At(i fixnum.Index) A {
	v.checkBound("At", i)
	return v.xs[i.Uint64()]
}

// Set returns a copy of v with the element at position i replaced by x.
//
func (v Vec[A]) Set(i fixnum.Index, x A) Vec[A] {
	v.checkBound("Set", i)
	r := Of(v.xs...)
	r.xs[i.Uint64()] = x
	return r
}

func (v Vec[A]) checkBound(op string, i fixnum.Index) {
	if i.Bound() != uint64(len(v.xs)) {
		panic("sizedvec: " + op + " index bound mismatch: " +
			strconv.FormatUint(i.Bound(), 10) + " vs length " + strconv.Itoa(len(v.xs)))
	}
}

// Head returns the first element of a non-empty vector.
//
func (v Vec[A]) Head() A {
	if len(v.xs) == 0 {
		panic("sizedvec: Head of empty vector")
	}
	return v.xs[0]
}

// Last returns the last element of a non-empty vector.
//
func (v Vec[A]) Last() A {
	if len(v.xs) == 0 {
		panic("sizedvec: Last of empty vector")
	}
	return v.xs[len(v.xs)-1]
}

// Tail returns v without its first element.
//
func (v Vec[A]) Tail() Vec[A] {
	if len(v.xs) == 0 {
		panic("sizedvec: Tail of empty vector")
	}
	return Of(v.xs[1:]...)
}

// Take returns the first k elements of v; k must not exceed the length.
//
func (v Vec[A]) Take(k int) Vec[A] {
	v.checkSplit("Take", k)
	return Of(v.xs[:k]...)
}

// Drop returns v without its first k elements; k must not exceed the length.
//
func (v Vec[A]) Drop(k int) Vec[A] {
	v.checkSplit("Drop", k)
	return Of(v.xs[k:]...)
}

// Split splits v after position k into a length-k prefix and a length
// Len()-k suffix. Split and Append are inverses:
// Append(v.Split(k)) == v and Append(a, b).Split(a.Len()) == (a, b).
//
func (v Vec[A]) Split(k int) (Vec[A], Vec[A]) {
	v.checkSplit("Split", k)
	return Of(v.xs[:k]...), Of(v.xs[k:]...)
}

func (v Vec[A]) checkSplit(op string, k int) {
	if k < 0 || k > len(v.xs) {
		panic("sizedvec: " + op + " position " + strconv.Itoa(k) + " out of range [0, " + strconv.Itoa(len(v.xs)) + "]")
	}
}

// Reverse returns v with its elements in reverse order.
//
func (v Vec[A]) Reverse() Vec[A] {
	n := len(v.xs)
	return Generate(n, func(i int) A { return v.xs[n-1-i] })
}

// Slice returns the elements of v as a fresh slice.
//
func (v Vec[A]) Slice() []A {
	xs := make([]A, len(v.xs))
	copy(xs, v.xs)
	return xs
}

// Map returns the vector of the same length with f applied to every element.
//
func Map[A, B any](f func(A) B, v Vec[A]) Vec[B] {
	return Generate(v.Len(), func(i int) B { return f(v.xs[i]) })
}

// ZipWith combines two vectors of the same length elementwise.
//
func ZipWith[A, B, C any](f func(A, B) C, a Vec[A], b Vec[B]) Vec[C] {
	if a.Len() != b.Len() {
		panic("sizedvec: ZipWith length mismatch: " + strconv.Itoa(a.Len()) + " vs " + strconv.Itoa(b.Len()))
	}
	return Generate(a.Len(), func(i int) C { return f(a.xs[i], b.xs[i]) })
}

// Append concatenates a and b; the result length is the sum of the operand
// lengths.
//
func Append[A any](a, b Vec[A]) Vec[A] {
	r := Vec[A]{xs: make([]A, 0, len(a.xs)+len(b.xs))}
	r.xs = append(r.xs, a.xs...)
	r.xs = append(r.xs, b.xs...)
	return r
}

// Fold reduces v with a binary operator and an identity element for the
// empty vector, combining left to right.
//
func Fold[A any](id A, f func(A, A) A, v Vec[A]) A {
	acc := id
	for _, x := range v.xs {
		acc = f(acc, x)
	}
	return acc
}

// Reduce reduces a non-empty vector with a binary operator, combining left
// to right.
//
func Reduce[A any](f func(A, A) A, v Vec[A]) A {
	if v.Len() == 0 {
		panic("sizedvec: Reduce of empty vector")
	}
	acc := v.xs[0]
	for _, x := range v.xs[1:] {
		acc = f(acc, x)
	}
	return acc
}

// Equal reports whether a and b have the same length and equal elements.
//
func Equal[A comparable](a, b Vec[A]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.xs {
		if a.xs[i] != b.xs[i] {
			return false
		}
	}
	return true
}

// Compare orders two vectors of the same length elementwise using cmp,
// returning the first non-zero comparison, or 0 if all elements compare
// equal.
//
func Compare[A any](cmp func(A, A) int, a, b Vec[A]) int {
	if a.Len() != b.Len() {
		panic("sizedvec: Compare length mismatch: " + strconv.Itoa(a.Len()) + " vs " + strconv.Itoa(b.Len()))
	}
	for i := range a.xs {
		if c := cmp(a.xs[i], b.xs[i]); c != 0 {
			return c
		}
	}
	return 0
}
