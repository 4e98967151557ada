// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slicesx provides combinators for working with slices of any
// element type.
//
// No function in this package mutates its inputs; results never share
// backing storage with the slices they were built from.
package slicesx

// Concat returns a single new slice containing all elements of the first
// sequence, followed by all elements of the second, and so on. Both the
// order of the sequences and the order of elements within each sequence
// are preserved.
//
// The total element count is computed up front and the result is allocated
// once, to exact capacity, before any copying happens. With no sequences,
// Concat returns an empty, non-nil slice.
func Concat[T any](seqs ...[]T) []T {
	var total int
	for _, seq := range seqs {
		total += len(seq)
	}

	out := make([]T, 0, total)
	for _, seq := range seqs {
		out = append(out, seq...)
	}
	return out
}

// Map returns a new slice containing the results of applying f to each
// element of s, in order.
func Map[T, R any](s []T, f func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns a new slice containing, in order, the elements of s for
// which pred returns true.
func Filter[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s left to right into a single value, starting from init
// and combining the accumulator with each element via f.
func Reduce[T, R any](s []T, init R, f func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}
