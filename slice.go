// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// sliceSource adapts an in-memory ordered sequence.
type sliceSource[T any] struct {
	elems []T
}

// FromSlice wraps s as an [Enumerable] visiting elements in slice order.
// The slice is not copied; the caller must not mutate it while a reduction
// over it is live.
func FromSlice[T any](s []T) Enumerable[T] {
	return sliceSource[T]{elems: s}
}

func (s sliceSource[T]) Reduce(acc Acc, fn Reducer[T]) Result {
	return ReduceSlice(s.elems, acc, fn)
}

// Count is the slice length.
func (s sliceSource[T]) Count() (int, bool) { return len(s.elems), true }

// Contains would require a linear scan, which the contract classifies as
// not cheap, so the query is declined and callers search by reducing.
func (s sliceSource[T]) Contains(T) (bool, bool) { return false, false }

func (s sliceSource[T]) Slice() (int, SliceFunc[T], bool) {
	return len(s.elems), s.slice, true
}

func (s sliceSource[T]) slice(start, length int) []T {
	out := make([]T, length)
	copy(out, s.elems[start:start+length])
	return out
}

// asSlice recovers the backing slice when e is the slice adapter.
//
// This is the structural fast path: operations that can exploit direct
// indexing check here first and run a plain loop, skipping protocol
// dispatch and its per-element closure calls entirely.
func asSlice[T any](e Enumerable[T]) ([]T, bool) {
	s, ok := e.(sliceSource[T])
	return s.elems, ok
}

// materialize returns the source's elements as a fresh slice the caller
// owns, through the structural fast path when one is available.
func materialize[T any](e Enumerable[T]) []T {
	if s, ok := asSlice(e); ok {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out = append(out, v)
		return Continue(nil)
	}))
	return out
}
