// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ho

import "strconv"

// Pairwise transposition over nested containers.
//
// Pairing combinators mirror the structural-map combinators: each shape
// contributes one combinator lifting an element pairer to a container
// pairer, with [PairLeaf] as the leaf rule. Pairing two structurally
// identical containers of leaves yields one container of [Duo] leaves,
// ready for a binary map through a handle of type Func[Duo[T], U].

// Duo is a pair of leaves produced by pairwise transposition.
type Duo[T any] struct {
	Fst T
	Snd T
}

// PairLeaf pairs two scalar leaves. A pair of leaves is already paired;
// recursion stops here.
func PairLeaf[T any](a, b T) Duo[T] {
	return Duo[T]{Fst: a, Snd: b}
}

// lengthMismatch panics with both lengths for strict slice pairing.
// Extracted as a noinline function so that PairSlice closures remain
// inlineable.
//
//go:noinline
func lengthMismatch(a, b int) {
	panic("ho: sequence length mismatch in PairSlice: " +
		strconv.Itoa(a) + " != " + strconv.Itoa(b))
}

// PairSlice lifts an element pairer to a pairer over slices.
// Element i of the first operand is paired with element i of the second,
// positionally, in index order.
//
// PairSlice is strict: operands of different lengths are a contract
// violation and panic. Use [PairSliceTrunc] when zip-to-the-shorter
// semantics are intended.
func PairSlice[T, P any](elem func(T, T) P) func([]T, []T) []P {
	return func(a, b []T) []P {
		if len(a) != len(b) {
			lengthMismatch(len(a), len(b))
		}
		out := make([]P, len(a))
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// PairSliceTrunc lifts an element pairer to a pairer over slices,
// truncating to the shorter operand. Elements of the longer operand beyond
// the shorter length are dropped silently.
func PairSliceTrunc[T, P any](elem func(T, T) P) func([]T, []T) []P {
	return func(a, b []T) []P {
		n := min(len(a), len(b))
		out := make([]P, n)
		for i := range n {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// Pair2 lifts an element pairer to a pairer over 2-element arrays.
func Pair2[T, P any](elem func(T, T) P) func([2]T, [2]T) [2]P {
	return func(a, b [2]T) (out [2]P) {
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// Pair3 lifts an element pairer to a pairer over 3-element arrays.
func Pair3[T, P any](elem func(T, T) P) func([3]T, [3]T) [3]P {
	return func(a, b [3]T) (out [3]P) {
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// Pair4 lifts an element pairer to a pairer over 4-element arrays.
func Pair4[T, P any](elem func(T, T) P) func([4]T, [4]T) [4]P {
	return func(a, b [4]T) (out [4]P) {
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// Pair5 lifts an element pairer to a pairer over 5-element arrays.
func Pair5[T, P any](elem func(T, T) P) func([5]T, [5]T) [5]P {
	return func(a, b [5]T) (out [5]P) {
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}

// Pair6 lifts an element pairer to a pairer over 6-element arrays.
func Pair6[T, P any](elem func(T, T) P) func([6]T, [6]T) [6]P {
	return func(a, b [6]T) (out [6]P) {
		for i := range a {
			out[i] = elem(a[i], b[i])
		}
		return out
	}
}
