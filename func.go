// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ho

// Func is the callable handle: a function from an argument of type T to a
// result of type U.
//
// Handles are shared by every holder and never mutated after construction.
// Go function values are immutable, so a handle may be invoked from any
// number of goroutines concurrently. Handles used with this package must be
// pure: the same argument always produces the same result, with no side
// effects.
//
// A handle is the function counterpart of a scalar leaf: Func[T, U]
// implements [Fun] under the [Arg] tag (see [Func.Call]), which covers
// every scalar kind with a single rule.
type Func[T, U any] func(T) U

// Iden is the identity handle. It is the left and right identity of
// [Compose].
func Iden[T any](v T) T { return v }

// Compose is left-to-right handle composition: Compose(f, g)(x) == g(f(x)).
// Composing pure handles yields a pure handle, so composed chains remain
// safe to share across goroutines.
func Compose[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// ConstOf returns a handle that ignores its argument and always produces v.
func ConstOf[T, U any](v U) Func[T, U] {
	return func(T) U {
		return v
	}
}
