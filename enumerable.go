// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// Reducer is the caller-supplied step function of a reduction. It receives
// one element together with the current payload and returns the next tagged
// accumulator.
type Reducer[T any] func(elem T, acc Erased) Acc

// SliceFunc returns length contiguous elements starting at position start.
// The bounds are the implementation's responsibility to have validated;
// implementations must produce the result in O(length) and must return a
// slice the caller may keep and mutate.
type SliceFunc[T any] func(start, length int) []T

// Enumerable is the capability contract every source implements.
//
// Reduce is the mandatory capability: it drives the whole protocol and
// every operation bottoms out in it. The other three are optional cheap
// queries; a source answers ok=false when it cannot do better than a linear
// traversal, and the caller falls back to reducing.
type Enumerable[T any] interface {
	// Reduce traverses the source in its natural order, calling fn once
	// per element and obeying the returned accumulator tag after every
	// call. The initial acc is usually Continue, but Halt and Suspend are
	// honored before the first element too.
	//
	// The returned Result classifies how the traversal ended. A source
	// must return Suspended if and only if fn returned Suspend, and the
	// carried continuation must observe each remaining element exactly
	// once. Cleanup, for sources that hold resources, runs on Done and on
	// Halted alike.
	Reduce(acc Acc, fn Reducer[T]) Result

	// Count returns the total number of elements, if that is knowable
	// without traversing. ok=false means the caller should count by
	// reducing.
	Count() (int, bool)

	// Contains reports whether v is an element, if membership is decidable
	// faster than a scan. ok=false means the caller should search by
	// reducing.
	Contains(v T) (bool, bool)

	// Slice returns the element count and a positional accessor, if the
	// source supports contiguous random access in O(length). ok=false
	// means positional operations must traverse.
	Slice() (int, SliceFunc[T], bool)
}

// ReduceSlice drives the canonical reduction loop over in-memory elements.
// Source adapters that materialize, or hold, their elements as a slice
// delegate here so that halt and suspend handling lives in one place.
func ReduceSlice[T any](s []T, acc Acc, fn Reducer[T]) Result {
	for {
		switch acc.tag {
		case accHalt:
			return Halted(acc.value)
		case accSuspend:
			rest := s
			return Suspended(acc.value, func(next Acc) Result {
				return ReduceSlice(rest, next, fn)
			})
		}
		if len(s) == 0 {
			return Done(acc.value)
		}
		acc = fn(s[0], acc.value)
		s = s[1:]
	}
}
