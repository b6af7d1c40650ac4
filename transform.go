// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "slices"

// ToSlice materializes the source as a fresh slice in traversal order.
func ToSlice[T any](e Enumerable[T]) []T {
	return materialize(e)
}

// Map returns fn applied to every element, in order.
func Map[T, U any](e Enumerable[T], fn func(T) U) []U {
	if s, ok := asSlice(e); ok {
		out := make([]U, len(s))
		for i, v := range s {
			out[i] = fn(v)
		}
		return out
	}
	var out []U
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out = append(out, fn(v))
		return Continue(nil)
	}))
	return out
}

// Filter returns the elements satisfying pred, in order.
func Filter[T any](e Enumerable[T], pred func(T) bool) []T {
	if s, ok := asSlice(e); ok {
		var out []T
		for _, v := range s {
			if pred(v) {
				out = append(out, v)
			}
		}
		return out
	}
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			out = append(out, v)
		}
		return Continue(nil)
	}))
	return out
}

// Reject returns the elements not satisfying pred, in order.
func Reject[T any](e Enumerable[T], pred func(T) bool) []T {
	return Filter(e, func(v T) bool { return !pred(v) })
}

// FlatMap maps every element to a sub-source and folds each sub-source
// into the result in order.
func FlatMap[T, U any](e Enumerable[T], fn func(T) Enumerable[U]) []U {
	var out []U
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out = append(out, materialize(fn(v))...)
		return Continue(nil)
	}))
	return out
}

// Uniq returns the elements with later duplicates removed; the first
// occurrence wins and order is otherwise preserved.
func Uniq[T comparable](e Enumerable[T]) []T {
	return UniqBy(e, identity[T])
}

// UniqBy returns the elements with later key-duplicates removed: two
// elements collide when key maps them to the same value.
func UniqBy[T any, K comparable](e Enumerable[T], key func(T) K) []T {
	seen := make(map[K]struct{})
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		k := key(v)
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			out = append(out, v)
		}
		return Continue(nil)
	}))
	return out
}

// Dedup collapses runs of consecutive equal elements down to one.
// Unlike [Uniq], a value may recur once a different value intervenes.
func Dedup[T comparable](e Enumerable[T]) []T {
	return DedupBy(e, identity[T])
}

// DedupBy collapses runs of consecutive elements sharing a key.
func DedupBy[T any, K comparable](e Enumerable[T], key func(T) K) []T {
	var out []T
	var prev K
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		k := key(v)
		if len(out) == 0 || k != prev {
			out = append(out, v)
			prev = k
		}
		return Continue(nil)
	}))
	return out
}

// identity is the element-as-its-own-key function.
//
// Allocation note: named so that the By variants can be reused without a
// closure allocation at each call site.
func identity[T any](v T) T { return v }

// Intersperse places sep between every two consecutive elements.
func Intersperse[T any](e Enumerable[T], sep T) []T {
	return MapIntersperse(e, sep, identity[T])
}

// MapIntersperse maps every element with fn and places sep between every
// two consecutive results, in a single traversal.
func MapIntersperse[T, U any](e Enumerable[T], sep U, fn func(T) U) []U {
	var out []U
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if len(out) > 0 {
			out = append(out, sep)
		}
		out = append(out, fn(v))
		return Continue(nil)
	}))
	return out
}

// MapEvery applies fn to every nth element starting with the first, and
// passes the rest through unchanged. nth of zero maps nothing; a negative
// nth panics.
func MapEvery[T any](e Enumerable[T], nth int, fn func(T) T) []T {
	if nth < 0 {
		badArg("negative nth")
	}
	if nth == 0 {
		return materialize(e)
	}
	i := 0
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if i%nth == 0 {
			v = fn(v)
		}
		i++
		out = append(out, v)
		return Continue(nil)
	}))
	return out
}

// WithIndex pairs every element with its position, counting from offset.
func WithIndex[T any](e Enumerable[T], offset int) []Pair[T, int] {
	i := offset
	var out []Pair[T, int]
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out = append(out, Pair[T, int]{Fst: v, Snd: i})
		i++
		return Continue(nil)
	}))
	return out
}

// Concat folds the given sources into one slice, in argument order.
func Concat[T any](sources ...Enumerable[T]) []T {
	var out []T
	for _, e := range sources {
		out = append(out, materialize(e)...)
	}
	return out
}

// Reverse returns the elements in reverse traversal order.
func Reverse[T any](e Enumerable[T]) []T {
	out := materialize(e)
	slices.Reverse(out)
	return out
}

// ReverseSlice reverses the count elements starting at position start,
// leaving the rest in place. The window is clipped to the source's end.
// Panics if start or count is negative.
func ReverseSlice[T any](e Enumerable[T], start, count int) []T {
	if start < 0 {
		badArg("negative start")
	}
	if count < 0 {
		badArg("negative count")
	}
	out := materialize(e)
	if start >= len(out) || count == 0 {
		return out
	}
	end := min(start+count, len(out))
	slices.Reverse(out[start:end])
	return out
}

// Slide moves the block of elements in positions first..last (inclusive)
// to position to: for a leftward move the block's first element lands at
// index to, for a rightward move its last element does. All three indices
// resolve negative values against the count and are then clipped into
// range. Panics if to falls inside the block being moved.
func Slide[T any](e Enumerable[T], first, last, to int) []T {
	out := materialize(e)
	n := len(out)
	if n == 0 {
		return out
	}
	first = clipIndex(first, n)
	last = clipIndex(last, n)
	to = clipIndex(to, n)
	if first > last || first == to {
		return out
	}
	if first <= to && to <= last {
		badArg("slide destination inside the moved block")
	}
	if to > last {
		// Moving right is moving the gap left: the block between the
		// moved range and the destination slides to position first.
		first, last, to = last+1, to, first
	}
	slid := make([]T, 0, n)
	slid = append(slid, out[:to]...)
	slid = append(slid, out[first:last+1]...)
	slid = append(slid, out[to:first]...)
	return append(slid, out[last+1:]...)
}

// clipIndex resolves a possibly negative index against n and clips it
// into [0, n).
func clipIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n-1))
}
