// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ho provides core types and operations for programming with higher
// order data structures in Go.
//
// A higher order data structure is a generalization of an ordinary data
// structure. In ordinary programming, data structures hold data and
// functions operate on data. In a higher order data structure the two
// become the same thing: every property can be a function of the same
// argument type.
//
// For example, an ordinary Point has x, y and z properties of type float64.
// If x, y and z are instead functions from T to float64, the point as a
// whole becomes a function of T: calling it with a T produces an ordinary
// Point. Unlike a plain function, the higher order point keeps its
// structure — its properties remain accessible and methods and operators
// can still be defined on it.
//
// The typical application is geometry. A circle can be represented as a
// higher order point over float64, where the argument is an angle or a
// value in the unit interval. A line is a higher order point that returns
// its start point when called with 0 and its end point when called with 1.
// An animated point can close over animation frames and take time as its
// argument. In every case, the algorithm using the structure never sees
// the implementation behind the properties.
//
// # Design
//
// The package is a pure dispatch and traversal core. It performs no
// numeric computation, holds no state, and does no I/O.
//
//   - [Func]: the callable handle, a shared immutable function value
//   - [Arg], [Unit]: argument tags keying the association protocol
//   - [Fun]: the association between a value type and its function
//     counterpart under a tag, resolved entirely at compile time
//   - [Id]: the Unit counterpart — every value is its own counterpart
//     under the empty tag, and calling it is a pass-through
//   - [Call], [Apply]: free-function resolution through the protocol
//
// Two rules cover all participating types. The leaf rule ships with the
// package: Func[T, U] is the counterpart of every scalar kind U, and
// resolving it applies the handle. The composite rule is written once per
// composite type by its author: declare the counterpart struct whose
// fields are the counterparts of the original fields, and implement a Call
// method that resolves each field with the same tag. These two
// declarations are the only boilerplate the protocol requires:
//
//	type Point struct{ X, Y, Z float64 }
//
//	type PointFunc[T any] struct {
//		X, Y, Z ho.Func[T, float64]
//	}
//
//	func (p PointFunc[T]) Call(a ho.Arg[T]) Point {
//		return Point{X: p.X.Call(a), Y: p.Y.Call(a), Z: p.Z.Call(a)}
//	}
//
// Operators are declared twice, exactly as for ordinary generic code: once
// for the ordinary case (Point) and once for the higher order case
// (PointFunc), where the result is itself a handle.
//
// # Structural Operations
//
// Complex data is often built from nested containers of leaves: edges
// [2]T, triangles [3]T, grids [][2]T and so on. The structural operations
// traverse such containers without per-type traversal code. Each container
// shape contributes one combinator, and nesting is expressed by nesting
// combinators.
//
// Structural map applies one shared handle to every leaf, preserving shape
// and element count exactly:
//
//   - [Lift]: leaf rule — resolve one leaf through the call protocol
//   - [Map2] … [Map6]: fixed arrays of arity 2–6
//   - [MapSlice]: variable-length sequences, index order
//   - [MapSlicePar]: MapSlice with parallel leaf evaluation
//
// Pairwise transposition zips two structurally identical containers into
// one container of [Duo] leaves, the usual preparation for a binary map:
//
//   - [PairLeaf]: leaf rule — two leaves form a Duo
//   - [Pair2] … [Pair6]: fixed arrays of arity 2–6, positional
//   - [PairSlice]: variable-length sequences, strict — panics on length
//     mismatch
//   - [PairSliceTrunc]: zip-to-the-shorter variant, trailing elements of
//     the longer operand are dropped
//
// For example, pairing two edges and mapping the midpoint handle over the
// result:
//
//	args := ho.Pair2(ho.PairLeaf[float64])([2]float64{0.7, 0.9}, [2]float64{0.9, 0.1})
//	mids := ho.Map2(inBetween)(args) // [2]float64{0.8, 0.0}
//
// # Concurrency
//
// Nothing in the package blocks, suspends, or schedules work. Handles are
// the only shared resource: immutable after construction, shared by
// unlimited concurrent readers, never owned by a call site. Because
// handles are pure, the leaves of a structural map may be evaluated in any
// order or in parallel without changing the result; [MapSlicePar] does
// exactly that. Structural position in every output always corresponds to
// structural position in the input.
//
// # Failure
//
// The protocol adds no error handling. A panic raised inside a handle
// propagates to the caller unchanged. The one contract violation the core
// can only detect at run time — strict pairing of sequences with different
// lengths — panics with an "ho:"-prefixed message. Everything else is a
// compile-time error: a missing association fails as "does not implement
// Fun", and conflicting associations for one (value type, tag) pair cannot
// be declared at all.
package ho
