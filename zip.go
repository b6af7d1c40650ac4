// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// Pair is a generic 2-tuple. The zip operations produce pairs, [Unzip]
// consumes them, and the key/value adapter emits its entries as pairs.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// The zip family advances its sources in lock step by suspending each one
// after every element, the one place the protocol's resumable traversal
// carries its weight: no source is materialized and no source runs ahead.

// Zip pairs the sources' elements positionally, stopping at the shorter
// source.
func Zip[A, B any](a Enumerable[A], b Enumerable[B]) []Pair[A, B] {
	return ZipWith(a, b, mkPair[A, B])
}

func mkPair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }

// ZipWith combines the sources' elements positionally with fn, stopping
// at the shorter source. The longer source's pending suspension is
// discarded, which drives its halt path and releases whatever it holds.
func ZipWith[A, B, C any](a Enumerable[A], b Enumerable[B], fn func(A, B) C) []C {
	sa := Step(a)
	if sa == nil {
		return nil
	}
	sb := Step(b)
	var out []C
	for sa != nil && sb != nil {
		out = append(out, fn(sa.Value(), sb.Value()))
		if sa = sa.Resume(); sa == nil {
			break
		}
		sb = sb.Resume()
	}
	if sa != nil {
		sa.Discard()
	}
	if sb != nil {
		sb.Discard()
	}
	return out
}

// ZipMany advances any number of same-typed sources in lock step, one row
// per position. Sources are stepped round-robin in argument order and the
// zip ends at the first source to run out; the rest are discarded.
func ZipMany[T any](sources ...Enumerable[T]) [][]T {
	if len(sources) == 0 {
		return nil
	}
	steps := make([]*Suspension[T], len(sources))
	for i, e := range sources {
		steps[i] = Step(e)
		if steps[i] == nil {
			discardAll(steps[:i])
			return nil
		}
	}
	var out [][]T
	for {
		row := make([]T, len(steps))
		for i, s := range steps {
			row[i] = s.Value()
		}
		out = append(out, row)
		for i, s := range steps {
			if steps[i] = s.Resume(); steps[i] == nil {
				discardAll(steps[:i])
				discardAll(steps[i+1:])
				return out
			}
		}
	}
}

func discardAll[T any](steps []*Suspension[T]) {
	for _, s := range steps {
		if s != nil {
			s.Discard()
		}
	}
}

// Unzip splits a source of pairs into its two positional projections.
func Unzip[A, B any](e Enumerable[Pair[A, B]]) ([]A, []B) {
	var as []A
	var bs []B
	terminal(e.Reduce(Continue(nil), func(p Pair[A, B], _ Erased) Acc {
		as = append(as, p.Fst)
		bs = append(bs, p.Snd)
		return Continue(nil)
	}))
	return as, bs
}
