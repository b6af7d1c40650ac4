// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// Number constrains the element types the arithmetic aggregates accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Reduce folds the source into a single value, feeding each element to fn
// together with the accumulator so far.
func Reduce[T, A any](e Enumerable[T], acc A, fn func(A, T) A) A {
	if s, ok := asSlice(e); ok {
		for _, v := range s {
			acc = fn(acc, v)
		}
		return acc
	}
	out := acc
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out = fn(out, v)
		return Continue(nil)
	}))
	return out
}

// ReduceWhile folds with a reducer that controls the traversal: fn returns
// Continue to keep folding or Halt to stop immediately, either way carrying
// the accumulator of type A as the payload. The payload of the final tagged
// accumulator is the result.
func ReduceWhile[T, A any](e Enumerable[T], acc A, fn func(A, T) Acc) A {
	r := e.Reduce(Continue(acc), func(v T, cur Erased) Acc {
		return fn(cur.(A), v)
	})
	return terminal(r).(A)
}

// MapReduce transforms and folds in one pass: fn maps each element to a
// result element and the next accumulator. It returns the mapped elements
// in order together with the final accumulator.
func MapReduce[T, U, A any](e Enumerable[T], acc A, fn func(T, A) (U, A)) ([]U, A) {
	var out []U
	cur := acc
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		u, next := fn(v, cur)
		out = append(out, u)
		cur = next
		return Continue(nil)
	}))
	return out, cur
}

// Scan folds like [Reduce] but emits every intermediate accumulator, so
// the result has one element per input element.
func Scan[T, A any](e Enumerable[T], acc A, fn func(A, T) A) []A {
	var out []A
	cur := acc
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		cur = fn(cur, v)
		out = append(out, cur)
		return Continue(nil)
	}))
	return out
}

// Count returns the number of elements, answering from the source's cheap
// count when it has one and traversing otherwise.
func Count[T any](e Enumerable[T]) int {
	if n, ok := e.Count(); ok {
		return n
	}
	n := 0
	terminal(e.Reduce(Continue(nil), func(T, Erased) Acc {
		n++
		return Continue(nil)
	}))
	return n
}

// CountBy returns the number of elements satisfying pred.
func CountBy[T any](e Enumerable[T], pred func(T) bool) int {
	n := 0
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			n++
		}
		return Continue(nil)
	}))
	return n
}

// IsEmpty reports whether the source has no elements. A source without a
// cheap count is probed by halting on the first element.
func IsEmpty[T any](e Enumerable[T]) bool {
	if n, ok := e.Count(); ok {
		return n == 0
	}
	empty := true
	terminal(e.Reduce(Continue(nil), func(T, Erased) Acc {
		empty = false
		return Halt(nil)
	}))
	return empty
}

// Contains reports whether v is an element of the source, using the
// source's cheap membership test when it has one and scanning with early
// exit otherwise.
func Contains[T comparable](e Enumerable[T], v T) bool {
	if found, ok := e.Contains(v); ok {
		return found
	}
	found := false
	terminal(e.Reduce(Continue(nil), func(elem T, _ Erased) Acc {
		if elem == v {
			found = true
			return Halt(nil)
		}
		return Continue(nil)
	}))
	return found
}

// Sum adds all elements. The sum of no elements is zero.
func Sum[T Number](e Enumerable[T]) T {
	var sum T
	if s, ok := asSlice(e); ok {
		for _, v := range s {
			sum += v
		}
		return sum
	}
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		sum += v
		return Continue(nil)
	}))
	return sum
}

// SumBy adds fn(elem) over all elements.
func SumBy[T any, N Number](e Enumerable[T], fn func(T) N) N {
	var sum N
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		sum += fn(v)
		return Continue(nil)
	}))
	return sum
}

// Product multiplies all elements. The product of no elements is one.
func Product[T Number](e Enumerable[T]) T {
	product := T(1)
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		product *= v
		return Continue(nil)
	}))
	return product
}

// All reports whether every element satisfies pred, halting at the first
// counterexample. All of an empty source is true.
func All[T any](e Enumerable[T], pred func(T) bool) bool {
	all := true
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if !pred(v) {
			all = false
			return Halt(nil)
		}
		return Continue(nil)
	}))
	return all
}

// Any reports whether at least one element satisfies pred, halting at the
// first witness. Any of an empty source is false.
func Any[T any](e Enumerable[T], pred func(T) bool) bool {
	any := false
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			any = true
			return Halt(nil)
		}
		return Continue(nil)
	}))
	return any
}

// Find returns the first element satisfying pred.
func Find[T any](e Enumerable[T], pred func(T) bool) (T, bool) {
	var found T
	ok := false
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			found, ok = v, true
			return Halt(nil)
		}
		return Continue(nil)
	}))
	return found, ok
}

// FindIndex returns the zero-based position of the first element
// satisfying pred, or -1 when none does.
func FindIndex[T any](e Enumerable[T], pred func(T) bool) int {
	index := -1
	i := 0
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			index = i
			return Halt(nil)
		}
		i++
		return Continue(nil)
	}))
	return index
}

// FindValue applies fn to each element and returns the first hit, halting
// the traversal there. It differs from [Find] in returning what fn
// produced instead of the element itself.
func FindValue[T, U any](e Enumerable[T], fn func(T) (U, bool)) (U, bool) {
	var found U
	ok := false
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if u, hit := fn(v); hit {
			found, ok = u, true
			return Halt(nil)
		}
		return Continue(nil)
	}))
	return found, ok
}

// Each calls fn on every element, for its side effects.
func Each[T any](e Enumerable[T], fn func(T)) {
	if s, ok := asSlice(e); ok {
		for _, v := range s {
			fn(v)
		}
		return
	}
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		fn(v)
		return Continue(nil)
	}))
}
