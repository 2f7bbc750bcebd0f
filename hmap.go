// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ho

import "sync"

// Structural map over nested containers.
//
// Each container shape contributes one combinator that lifts an element
// transform to a container transform; nested shapes are expressed by
// nesting combinators. The leaf rule is [Lift] (or the handle itself, for
// scalar leaves). For example, a map over a slice of 2-element arrays of
// scalars is MapSlice(Map2(f)).
//
// Every combinator preserves shape exactly — same arity, same length — and
// element i of the output depends only on element i of the input.

// Lift adapts a parameterized function counterpart into a plain element
// transform usable by the container mappers. This is the leaf rule of
// structural mapping: each leaf is resolved through the call protocol with
// the same shared counterpart.
//
// For scalar leaves the counterpart is a [Func] and can be passed to the
// container mappers directly; Lift is needed when the leaf is a composite
// value produced by a composite counterpart.
func Lift[T, U any](f Fun[Arg[T], U]) func(T) U {
	return func(v T) U {
		return f.Call(Arg[T]{Value: v})
	}
}

// MapSlice lifts an element transform to a transform over slices.
// The output length equals the input length and elements are evaluated in
// index order. An empty or nil input yields an empty output.
func MapSlice[T, U any](elem func(T) U) func([]T) []U {
	return func(in []T) []U {
		out := make([]U, len(in))
		for i, v := range in {
			out[i] = elem(v)
		}
		return out
	}
}

// MapSlicePar is [MapSlice] with one goroutine per element.
//
// Because element transforms built from pure handles are referentially
// transparent and share no mutable state, evaluation order cannot be
// observed: the output is identical to MapSlice on the same input. Each
// goroutine writes only its own index.
func MapSlicePar[T, U any](elem func(T) U) func([]T) []U {
	return func(in []T) []U {
		out := make([]U, len(in))
		var wg sync.WaitGroup
		wg.Add(len(in))
		for i, v := range in {
			go func() {
				defer wg.Done()
				out[i] = elem(v)
			}()
		}
		wg.Wait()
		return out
	}
}

// Map2 lifts an element transform to a transform over 2-element arrays.
func Map2[T, U any](elem func(T) U) func([2]T) [2]U {
	return func(in [2]T) (out [2]U) {
		for i := range in {
			out[i] = elem(in[i])
		}
		return out
	}
}

// Map3 lifts an element transform to a transform over 3-element arrays.
func Map3[T, U any](elem func(T) U) func([3]T) [3]U {
	return func(in [3]T) (out [3]U) {
		for i := range in {
			out[i] = elem(in[i])
		}
		return out
	}
}

// Map4 lifts an element transform to a transform over 4-element arrays.
func Map4[T, U any](elem func(T) U) func([4]T) [4]U {
	return func(in [4]T) (out [4]U) {
		for i := range in {
			out[i] = elem(in[i])
		}
		return out
	}
}

// Map5 lifts an element transform to a transform over 5-element arrays.
func Map5[T, U any](elem func(T) U) func([5]T) [5]U {
	return func(in [5]T) (out [5]U) {
		for i := range in {
			out[i] = elem(in[i])
		}
		return out
	}
}

// Map6 lifts an element transform to a transform over 6-element arrays.
func Map6[T, U any](elem func(T) U) func([6]T) [6]U {
	return func(in [6]T) (out [6]U) {
		for i := range in {
			out[i] = elem(in[i])
		}
		return out
	}
}
