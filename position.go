// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// slicer reports the source's size and positional accessor when cheap
// contiguous access exists, preferring the structural fast path over the
// protocol capability.
func slicer[T any](e Enumerable[T]) (int, SliceFunc[T], bool) {
	if s, ok := asSlice(e); ok {
		return len(s), func(start, length int) []T {
			out := make([]T, length)
			copy(out, s[start:start+length])
			return out
		}, true
	}
	return e.Slice()
}

// At returns the element at index, or def when the index resolves outside
// the source. Negative indices count back from the end.
func At[T any](e Enumerable[T], index int, def T) T {
	v, err := Fetch(e, index)
	if err != nil {
		return def
	}
	return v
}

// Fetch returns the element at index, or [ErrOutOfBounds] when the index
// resolves outside the source. Negative indices count back from the end.
//
// With cheap positional access this is a direct lookup. Otherwise a
// non-negative index halts a traversal at the target offset, and a
// negative one forces a full traversal to learn the count.
func Fetch[T any](e Enumerable[T], index int) (T, error) {
	var zero T
	if s, ok := asSlice(e); ok {
		i := index
		if i < 0 {
			i += len(s)
		}
		if i < 0 || i >= len(s) {
			return zero, ErrOutOfBounds
		}
		return s[i], nil
	}
	if n, at, ok := e.Slice(); ok {
		i := index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return zero, ErrOutOfBounds
		}
		return at(i, 1)[0], nil
	}
	if index >= 0 {
		var found T
		ok := false
		i := 0
		terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
			if i == index {
				found, ok = v, true
				return Halt(nil)
			}
			i++
			return Continue(nil)
		}))
		if !ok {
			return zero, ErrOutOfBounds
		}
		return found, nil
	}
	s := materialize(e)
	i := index + len(s)
	if i < 0 {
		return zero, ErrOutOfBounds
	}
	return s[i], nil
}

// Slice returns up to count elements starting at position start. A start
// that resolves outside the source yields an empty result; a count that
// reaches past the end is clipped. Negative starts count back from the
// end. Panics if count is negative.
//
// Without cheap positional access the source is traversed once, counting
// and buffering simultaneously, and the buffer is re-sliced.
func Slice[T any](e Enumerable[T], start, count int) []T {
	if count < 0 {
		badArg("negative count")
	}
	if count == 0 {
		return nil
	}
	if n, at, ok := slicer(e); ok {
		s := start
		if s < 0 {
			s += n
		}
		if s < 0 || s >= n {
			return nil
		}
		return at(s, min(count, n-s))
	}
	buf := materialize(e)
	s := start
	if s < 0 {
		s += len(buf)
	}
	if s < 0 || s >= len(buf) {
		return nil
	}
	l := min(count, len(buf)-s)
	out := make([]T, l)
	copy(out, buf[s:s+l])
	return out
}

// SliceRange returns the elements in positions first..last, both
// inclusive and both resolving negative values against the count. An
// empty or inverted window yields an empty result.
func SliceRange[T any](e Enumerable[T], first, last int) []T {
	if first >= 0 && last >= 0 {
		if last < first {
			return nil
		}
		return Slice(e, first, last-first+1)
	}
	n, _, ok := slicer(e)
	if !ok {
		n = Count(e)
	}
	f, l := first, last
	if f < 0 {
		f += n
	}
	if l < 0 {
		l += n
	}
	if f < 0 || l < f {
		return nil
	}
	return Slice(e, f, l-f+1)
}

// Take returns the first n elements when n is positive, the last n
// elements when n is negative, and nothing when n is zero. Taking more
// than the source holds returns everything.
//
// A positive take halts the traversal after n elements, so it terminates
// on infinite sources. A negative take without cheap access keeps a
// sliding window of the last |n| elements.
func Take[T any](e Enumerable[T], n int) []T {
	switch {
	case n == 0:
		return nil
	case n > 0:
		if size, at, ok := slicer(e); ok {
			if size == 0 {
				return nil
			}
			return at(0, min(n, size))
		}
		out := make([]T, 0, n)
		terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
			out = append(out, v)
			if len(out) == n {
				return Halt(nil)
			}
			return Continue(nil)
		}))
		return out
	default:
		k := -n
		if size, at, ok := slicer(e); ok {
			if size == 0 {
				return nil
			}
			l := min(k, size)
			return at(size-l, l)
		}
		ring, pos, total := takeRing(e, k)
		if total <= k {
			return ring
		}
		return append(ring[pos:], ring[:pos]...)
	}
}

// takeRing traverses e keeping only the most recent k elements in a
// circular buffer. pos is the rotation point once the buffer has wrapped.
func takeRing[T any](e Enumerable[T], k int) (ring []T, pos, total int) {
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if len(ring) < k {
			ring = append(ring, v)
		} else {
			ring[pos] = v
			pos = (pos + 1) % k
		}
		total++
		return Continue(nil)
	}))
	return ring, pos, total
}

// Drop returns the elements after skipping the first n when n is positive,
// or all but the last |n| when n is negative. Dropping more than the
// source holds returns nothing.
func Drop[T any](e Enumerable[T], n int) []T {
	switch {
	case n == 0:
		return materialize(e)
	case n > 0:
		if size, at, ok := slicer(e); ok {
			if n >= size {
				return nil
			}
			return at(n, size-n)
		}
		skip := n
		var out []T
		terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
			if skip > 0 {
				skip--
				return Continue(nil)
			}
			out = append(out, v)
			return Continue(nil)
		}))
		return out
	default:
		k := -n
		if size, at, ok := slicer(e); ok {
			if k >= size {
				return nil
			}
			return at(0, size-k)
		}
		// Emit each element once k newer ones have been seen, so the
		// final k never leave the window.
		window := make([]T, 0, k)
		pos := 0
		var out []T
		terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
			if len(window) < k {
				window = append(window, v)
			} else {
				out = append(out, window[pos])
				window[pos] = v
				pos = (pos + 1) % k
			}
			return Continue(nil)
		}))
		return out
	}
}

// TakeWhile returns the leading elements satisfying pred, halting at the
// first that does not.
func TakeWhile[T any](e Enumerable[T], pred func(T) bool) []T {
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if !pred(v) {
			return Halt(nil)
		}
		out = append(out, v)
		return Continue(nil)
	}))
	return out
}

// DropWhile returns the elements from the first one failing pred onward.
func DropWhile[T any](e Enumerable[T], pred func(T) bool) []T {
	dropping := true
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if dropping && pred(v) {
			return Continue(nil)
		}
		dropping = false
		out = append(out, v)
		return Continue(nil)
	}))
	return out
}

// TakeEvery returns every nth element starting with the first. An nth of
// zero takes nothing and an nth of one takes everything. Panics if nth is
// negative.
func TakeEvery[T any](e Enumerable[T], nth int) []T {
	if nth < 0 {
		badArg("negative nth")
	}
	if nth == 0 {
		return nil
	}
	i := 0
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if i%nth == 0 {
			out = append(out, v)
		}
		i++
		return Continue(nil)
	}))
	return out
}

// DropEvery drops every nth element starting with the first. An nth of
// zero drops nothing and an nth of one drops everything. Panics if nth is
// negative.
func DropEvery[T any](e Enumerable[T], nth int) []T {
	if nth < 0 {
		badArg("negative nth")
	}
	if nth == 0 {
		return materialize(e)
	}
	i := 0
	var out []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if i%nth != 0 {
			out = append(out, v)
		}
		i++
		return Continue(nil)
	}))
	return out
}

// Split cuts the source at position n into a leading and a trailing part.
// A negative n cuts |n| elements before the end; the cut is clipped into
// range either way.
func Split[T any](e Enumerable[T], n int) ([]T, []T) {
	s := materialize(e)
	cut := n
	if cut < 0 {
		cut += len(s)
	}
	cut = max(0, min(cut, len(s)))
	return s[:cut:cut], s[cut:]
}

// SplitWhile cuts the source where pred first fails: the leading part is
// the longest prefix satisfying pred, the trailing part is the rest.
func SplitWhile[T any](e Enumerable[T], pred func(T) bool) ([]T, []T) {
	var lead, rest []T
	taking := true
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if taking && pred(v) {
			lead = append(lead, v)
		} else {
			taking = false
			rest = append(rest, v)
		}
		return Continue(nil)
	}))
	return lead, rest
}

// SplitWith partitions the elements by pred in one traversal: satisfying
// elements in the first part, the rest in the second, both in encounter
// order.
func SplitWith[T any](e Enumerable[T], pred func(T) bool) ([]T, []T) {
	var yes, no []T
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
		return Continue(nil)
	}))
	return yes, no
}
