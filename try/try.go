// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for bridging between panics and error
// values.
package try

import (
	"errors"
	"fmt"
)

// PanicError wraps a value recovered from a panic so it can travel as an
// ordinary error.
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
// It returns nil when the recovered value is not an error.
func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Must returns v when err is nil and panics with err otherwise. It is
// meant for initialization paths where an error is programmer error:
//
//	tmpl := try.Must(template.New("greeting").Parse(src))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Recover converts a panic into a [PanicError] assigned through err. It
// must be deferred directly so recover can observe the unwinding:
//
//	func parse(src string) (err error) {
//		defer try.Recover(&err)
//		// ...
//	}
//
// When *err is already non-nil the recovered panic is joined onto it with
// [errors.Join]. Without a panic in flight, Recover leaves *err untouched.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}
