// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// GeneratorFunc is a reduction loop in caller-supplied form: it receives
// the initial accumulator and the reducer and owns the traversal, including
// honoring Halt and Suspend and classifying its own result.
//
// Generators are how unbounded and effectful sources enter the protocol; a
// generator that never runs out simply never returns Done, and callers rely
// on halting operations such as [Take] to terminate it.
type GeneratorFunc[T any] func(acc Acc, fn Reducer[T]) Result

// funcSource adapts a generator callable. Nothing about an opaque
// callable's size or membership is knowable without running it, so every
// cheap query is declined.
type funcSource[T any] struct {
	gen GeneratorFunc[T]
}

// FromFunc wraps a generator callable as an [Enumerable].
func FromFunc[T any](gen GeneratorFunc[T]) Enumerable[T] {
	return funcSource[T]{gen: gen}
}

func (s funcSource[T]) Reduce(acc Acc, fn Reducer[T]) Result {
	return s.gen(acc, fn)
}

func (s funcSource[T]) Count() (int, bool) { return 0, false }

func (s funcSource[T]) Contains(T) (bool, bool) { return false, false }

func (s funcSource[T]) Slice() (int, SliceFunc[T], bool) { return 0, nil, false }
