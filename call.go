// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ho

// Unit is the argument tag for "no argument".
// Under Unit, a value type is its own function counterpart and calling is a
// pass-through; see [Id].
type Unit = struct{}

// Arg is the argument tag for "parameterized by T".
//
// The tag type is the first parameter of [Fun], so the parameterized
// association for a value type can never collide with its Unit association
// under one lookup key. Arg carries no behavior; it forwards its payload
// structurally through composite calls.
type Arg[T any] struct{ Value T }

// Fun is the association between a value type V and its function
// counterpart under argument tag G. A type F implements Fun[G, V] exactly
// when F is the counterpart of V for G: resolving F against a tag value
// produces a V.
//
// The association is resolved entirely at compile time. A type has at most
// one Call method for a given tag, so conflicting associations for the same
// (value type, tag) pair cannot be declared, and a missing association
// surfaces as a "does not implement Fun" compile error at the call site.
//
// Two rules cover all participating types:
//
//   - Leaf rule, provided here once: [Func][T, U] implements
//     Fun[Arg[T], U] by invoking the handle with the tag payload.
//   - Composite rule, written once per composite type by its author: the
//     counterpart struct holds the counterpart of each field, and its Call
//     method resolves every field with the same tag and reassembles the
//     value.
//
// Example composite declaration:
//
//	type Point struct{ X, Y, Z float64 }
//
//	// PointFunc is the counterpart of Point: every coordinate is a
//	// function of T.
//	type PointFunc[T any] struct {
//		X, Y, Z ho.Func[T, float64]
//	}
//
//	func (p PointFunc[T]) Call(a ho.Arg[T]) Point {
//		return Point{X: p.X.Call(a), Y: p.Y.Call(a), Z: p.Z.Call(a)}
//	}
type Fun[G, V any] interface {
	// Call resolves the counterpart against a tag value, producing the value.
	Call(G) V
}

// Call implements the leaf rule of the call protocol: a scalar's
// counterpart is a plain handle, and resolving it applies the handle to the
// tag payload. No per-scalar code exists anywhere in the protocol.
//
// A panic raised inside the handle propagates to the caller unchanged; the
// protocol adds no recovery of its own.
func (f Func[T, U]) Call(a Arg[T]) U {
	return f(a.Value)
}

// Id wraps a value as its own function counterpart for the Unit tag.
// This is the identity law of the association protocol: resolving against
// Unit yields the value unchanged, for every value type.
type Id[V any] struct{ Value V }

// Call implements [Fun] for the Unit tag as a pass-through.
func (v Id[V]) Call(Unit) V {
	return v.Value
}

// Call resolves a function counterpart f against tag g.
// It is the free-function form of [Fun.Call], useful when the counterpart
// is held as an interface value.
func Call[G, V any](f Fun[G, V], g G) V {
	return f.Call(g)
}

// Apply resolves a parameterized counterpart against a raw argument,
// wrapping the argument in its [Arg] tag.
//
// Go does not infer type arguments through interface satisfaction, so calls
// with a concrete counterpart type spell them out:
//
//	p := ho.Apply[float64, Point](line, 0.5)
//
// Composite authors typically add a helper method forwarding to Call,
// which reads better at use sites.
func Apply[T, V any](f Fun[Arg[T], V], arg T) V {
	return f.Call(Arg[T]{Value: arg})
}
