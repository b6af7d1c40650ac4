// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "math"

// Rand is the uniform integer source the sampling operations draw from.
// IntN must return a uniform integer in [0, n); *math/rand/v2.Rand
// satisfies the interface.
type Rand interface {
	IntN(n int) int
}

// reservoirDenseLimit is the take size at which [TakeRandom] switches
// from a dense reservoir to a sparse one. A dense reservoir allocates all
// k slots up front, which is wasteful when k is large and the source
// turns out to hold far fewer elements. (tunable)
const reservoirDenseLimit = 128

// Random returns one element chosen uniformly, or [ErrEmpty] when the
// source has none. Sources with cheap positional access are answered with
// a single index draw; anything else falls back to a one-element
// reservoir pass.
func Random[T any](e Enumerable[T], r Rand) (T, error) {
	if n, at, ok := slicer(e); ok {
		if n == 0 {
			var zero T
			return zero, ErrEmpty
		}
		return at(r.IntN(n), 1)[0], nil
	}
	picked := TakeRandom(e, 1, r)
	if len(picked) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return picked[0], nil
}

// TakeRandom selects min(k, count) elements uniformly at random in a
// single traversal; the result order is itself random. Panics if k is
// negative.
//
// The reservoir keeps slot j for the ith element only when the draw
// j = r.IntN(i+1) lands inside it, which gives every element the same
// probability of surviving regardless of position.
func TakeRandom[T any](e Enumerable[T], k int, r Rand) []T {
	if k < 0 {
		badArg("negative take count")
	}
	if k == 0 {
		return nil
	}
	if k <= reservoirDenseLimit {
		return takeRandomDense(e, k, r)
	}
	return takeRandomSparse(e, k, r)
}

func takeRandomDense[T any](e Enumerable[T], k int, r Rand) []T {
	buf := make([]T, k)
	i := 0
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		j := r.IntN(i + 1)
		if i < k {
			buf[i] = v
			buf[i], buf[j] = buf[j], buf[i]
		} else if j < k {
			buf[j] = v
		}
		i++
		return Continue(nil)
	}))
	return buf[:min(i, k)]
}

// takeRandomSparse runs the same reservoir over a map keyed by slot, so
// only slots that were ever filled cost memory.
func takeRandomSparse[T any](e Enumerable[T], k int, r Rand) []T {
	buf := make(map[int]T)
	i := 0
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		j := r.IntN(i + 1)
		if i < k {
			buf[i] = v
			buf[i], buf[j] = buf[j], buf[i]
		} else if j < k {
			buf[j] = v
		}
		i++
		return Continue(nil)
	}))
	out := make([]T, min(i, k))
	for idx := range out {
		out[idx] = buf[idx]
	}
	return out
}

// Shuffle returns the elements in uniformly random order. Every element
// is tagged with an independent random key and the tags are sorted.
func Shuffle[T any](e Enumerable[T], r Rand) []T {
	var tagged []Pair[int, T]
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		tagged = append(tagged, Pair[int, T]{Fst: r.IntN(math.MaxInt), Snd: v})
		return Continue(nil)
	}))
	sorted := SortWith(FromSlice(tagged), lessEqualTag[T])
	out := make([]T, len(sorted))
	for i, p := range sorted {
		out[i] = p.Snd
	}
	return out
}

func lessEqualTag[T any](a, b Pair[int, T]) bool { return a.Fst <= b.Fst }
