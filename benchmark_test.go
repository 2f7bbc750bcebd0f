// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ho_test

import (
	"testing"

	"code.hybscloud.com/ho"
)

// BenchmarkLeafCall measures dispatch through the leaf rule.
func BenchmarkLeafCall(b *testing.B) {
	h := ho.Func[int, int](func(x int) int { return x + 1 })
	for b.Loop() {
		_ = h.Call(ho.Arg[int]{Value: 1})
	}
}

// BenchmarkCompositeCall measures dispatch through a three-field composite.
func BenchmarkCompositeCall(b *testing.B) {
	line := lineFunc(Point{X: 0, Y: 0, Z: 0}, Point{X: 2, Y: 4, Z: 6})
	for b.Loop() {
		_ = line.Call(ho.Arg[float64]{Value: 0.5})
	}
}

// BenchmarkMapSlice measures structural map over a 1k-element sequence.
func BenchmarkMapSlice(b *testing.B) {
	square := func(x int) int { return x * x }
	mapper := ho.MapSlice(square)
	in := make([]int, 1024)
	for i := range in {
		in[i] = i
	}
	for b.Loop() {
		_ = mapper(in)
	}
}

// BenchmarkMapSlicePar measures the parallel map on the same workload as
// BenchmarkMapSlice, mostly to expose the goroutine overhead on cheap
// handles.
func BenchmarkMapSlicePar(b *testing.B) {
	square := func(x int) int { return x * x }
	mapper := ho.MapSlicePar(square)
	in := make([]int, 1024)
	for i := range in {
		in[i] = i
	}
	for b.Loop() {
		_ = mapper(in)
	}
}

// BenchmarkPairSlice measures pairwise transposition over a 1k-element
// sequence.
func BenchmarkPairSlice(b *testing.B) {
	pairer := ho.PairSlice(ho.PairLeaf[int])
	a := make([]int, 1024)
	c := make([]int, 1024)
	for b.Loop() {
		_ = pairer(a, c)
	}
}

// BenchmarkNestedMap measures a three-level nested map: slice of 2x2
// blocks.
func BenchmarkNestedMap(b *testing.B) {
	inc := func(x int) int { return x + 1 }
	mapper := ho.MapSlice(ho.Map2(ho.Map2(inc)))
	in := make([][2][2]int, 256)
	for b.Loop() {
		_ = mapper(in)
	}
}
