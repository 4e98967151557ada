// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package terse provides small, pure helpers for expressing common
// one-line idioms clearly.
//
// Every function in this module is total over its valid inputs, has no side
// effects, holds no state, and performs no I/O. Because nothing is shared,
// every function is safe to call concurrently without coordination.
//
// The root package covers conditional selection and zero-value coalescing:
//
//   - If: choose between two already-computed values with a boolean
//   - IfFunc: choose between two branches, evaluating only the chosen one
//   - Or: the first non-zero value of its arguments
//   - OrElse: a value, or a lazily computed fallback when it is zero
//
// Subpackages cover the remaining idioms:
//
//   - stringsx: character-wise string manipulation, e.g. Reverse
//   - slicesx: slice combinators, e.g. Concat, Map, Filter, Reduce
//   - ptr: pointer construction and nil-safe dereferencing
//   - try: bridging between panics and error values
//
// # Basic Usage
//
// Replace a four line if/else with a single expression:
//
//	port := terse.If(cfg.Debug, 8080, 80)
//
// Flatten a batch of pages into one slice, allocated exactly once:
//
//	all := slicesx.Concat(pages...)
//
// Reverse text without corrupting multi-byte characters:
//
//	s := stringsx.Reverse("Hello, 世界")
package terse
