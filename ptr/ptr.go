// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ptr provides helpers for constructing pointers to values and
// dereferencing possibly-nil pointers safely.
package ptr

// To returns a pointer to a copy of v. It makes taking the address of a
// literal or a function result a single expression.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points at, or the zero value of T when p
// is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// DerefOr returns the value p points at, or fallback when p is nil.
func DerefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
