// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package terse

// If returns ifTrue when cond is true and ifFalse otherwise.
//
// If selects between values, it does not branch: both arguments are fully
// evaluated by the caller before If runs. When evaluating the unchosen
// value is expensive, or unsafe as in the following example, use [IfFunc]
// instead.
//
//	terse.If(p != nil, p.Name, "unknown") // p.Name is evaluated even when p is nil
func If[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// IfFunc returns the result of ifTrue when cond is true and the result
// of ifFalse otherwise. Only the chosen function is invoked.
func IfFunc[T any](cond bool, ifTrue, ifFalse func() T) T {
	if cond {
		return ifTrue()
	}
	return ifFalse()
}

// Or returns the first of vals which is not the zero value of T. It
// returns the zero value of T if vals is empty or every value is zero.
func Or[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// OrElse returns v unless it is the zero value of T, in which case it
// returns the result of calling f.
func OrElse[T comparable](v T, f func() T) T {
	var zero T
	if v != zero {
		return v
	}
	return f()
}
